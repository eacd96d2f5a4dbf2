package entity

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Field length bounds for each resource kind.
const (
	productNameMin = 2
	productNameMax = 100
	productDescMin = 10
	productDescMax = 1000

	articleTitleMin   = 5
	articleTitleMax   = 200
	articleContentMin = 10
	articleContentMax = 5000

	commentContentMin = 2
	commentContentMax = 500
)

// ProductDraft is the raw create input for a product, prior to validation.
// Price is `any` because clients send it either as a JSON number or as a
// numeric string; coercion happens inside ValidateProduct so a bad value
// produces a violation message instead of a silent zero.
type ProductDraft struct {
	Name        string
	Description string
	Price       any
	Tags        []string
	ImageURL    string
}

// ProductPatch carries the mutable fields of a partial product update.
// Nil fields are left untouched; only supplied fields are re-validated.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       any
	Tags        []string
}

// IsEmpty reports whether the patch supplies no mutable field.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Tags == nil
}

// ArticleDraft is the raw create input for an article.
type ArticleDraft struct {
	Title   string
	Content string
}

// ArticlePatch carries the mutable fields of a partial article update.
type ArticlePatch struct {
	Title   *string
	Content *string
}

// IsEmpty reports whether the patch supplies no mutable field.
func (p ArticlePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}

// ValidateProduct runs every product rule, aggregating all failures.
// On success it returns a normalized Product (trimmed strings, coerced
// price) with ID and CreatedAt left zero for the storage layer to fill.
func ValidateProduct(d ProductDraft) (Product, error) {
	var v Violations

	name := strings.TrimSpace(d.Name)
	switch {
	case name == "":
		v.Add("상품 이름은 필수입니다.")
	case !lengthBetween(name, productNameMin, productNameMax):
		v.Add("상품 이름은 2자에서 100자 사이여야 합니다.")
	}

	desc := strings.TrimSpace(d.Description)
	if desc != "" && !lengthBetween(desc, productDescMin, productDescMax) {
		v.Add("상품 설명은 10자에서 1000자 사이여야 합니다.")
	}

	price := validatePrice(d.Price, &v)
	tags := validateTags(d.Tags, &v)

	if err := v.Err(); err != nil {
		return Product{}, err
	}
	return Product{
		Name:        name,
		Description: desc,
		Price:       price,
		Tags:        tags,
		ImageURL:    strings.TrimSpace(d.ImageURL),
	}, nil
}

// ApplyProductPatch validates the supplied fields of a partial update and
// applies them to the product. At least one mutable field must be present.
func ApplyProductPatch(p *Product, patch ProductPatch) error {
	if patch.IsEmpty() {
		return EmptyPatchError()
	}

	var v Violations
	var name, desc string
	if patch.Name != nil {
		name = strings.TrimSpace(*patch.Name)
		if name == "" {
			v.Add("상품 이름은 필수입니다.")
		} else if !lengthBetween(name, productNameMin, productNameMax) {
			v.Add("상품 이름은 2자에서 100자 사이여야 합니다.")
		}
	}
	if patch.Description != nil {
		desc = strings.TrimSpace(*patch.Description)
		if desc != "" && !lengthBetween(desc, productDescMin, productDescMax) {
			v.Add("상품 설명은 10자에서 1000자 사이여야 합니다.")
		}
	}
	var price float64
	if patch.Price != nil {
		price = validatePrice(patch.Price, &v)
	}
	var tags []string
	if patch.Tags != nil {
		tags = validateTags(patch.Tags, &v)
	}

	if err := v.Err(); err != nil {
		return err
	}

	if patch.Name != nil {
		p.Name = name
	}
	if patch.Description != nil {
		p.Description = desc
	}
	if patch.Price != nil {
		p.Price = price
	}
	if patch.Tags != nil {
		p.Tags = tags
	}
	return nil
}

// ValidateArticle runs every article rule, aggregating all failures.
func ValidateArticle(d ArticleDraft) (Article, error) {
	var v Violations

	title := strings.TrimSpace(d.Title)
	switch {
	case title == "":
		v.Add("게시글 제목은 필수입니다.")
	case !lengthBetween(title, articleTitleMin, articleTitleMax):
		v.Add("게시글 제목은 5자에서 200자 사이여야 합니다.")
	}

	content := strings.TrimSpace(d.Content)
	switch {
	case content == "":
		v.Add("게시글 내용은 필수입니다.")
	case !lengthBetween(content, articleContentMin, articleContentMax):
		v.Add("게시글 내용은 10자에서 5000자 사이여야 합니다.")
	}

	if err := v.Err(); err != nil {
		return Article{}, err
	}
	return Article{Title: title, Content: content}, nil
}

// ApplyArticlePatch validates the supplied fields of a partial update and
// applies them to the article. At least one mutable field must be present.
func ApplyArticlePatch(a *Article, patch ArticlePatch) error {
	if patch.IsEmpty() {
		return EmptyPatchError()
	}

	var v Violations
	var title, content string
	if patch.Title != nil {
		title = strings.TrimSpace(*patch.Title)
		if title == "" {
			v.Add("게시글 제목은 필수입니다.")
		} else if !lengthBetween(title, articleTitleMin, articleTitleMax) {
			v.Add("게시글 제목은 5자에서 200자 사이여야 합니다.")
		}
	}
	if patch.Content != nil {
		content = strings.TrimSpace(*patch.Content)
		if content == "" {
			v.Add("게시글 내용은 필수입니다.")
		} else if !lengthBetween(content, articleContentMin, articleContentMax) {
			v.Add("게시글 내용은 10자에서 5000자 사이여야 합니다.")
		}
	}

	if err := v.Err(); err != nil {
		return err
	}

	if patch.Title != nil {
		a.Title = title
	}
	if patch.Content != nil {
		a.Content = content
	}
	return nil
}

// ValidateCommentContent checks the single mutable comment field and
// returns the trimmed content.
func ValidateCommentContent(content string) (string, error) {
	var v Violations

	trimmed := strings.TrimSpace(content)
	switch {
	case trimmed == "":
		v.Add("댓글 내용은 필수입니다.")
	case !lengthBetween(trimmed, commentContentMin, commentContentMax):
		v.Add("댓글 내용은 2자에서 500자 사이여야 합니다.")
	}

	if err := v.Err(); err != nil {
		return "", err
	}
	return trimmed, nil
}

// validatePrice coerces the raw price value and records violations.
// Accepted representations: float64 (plain JSON number), json.Number,
// and numeric strings. Anything else is a distinct coercion failure.
func validatePrice(raw any, v *Violations) float64 {
	if raw == nil {
		v.Add("가격은 필수입니다.")
		return 0
	}

	var price float64
	var err error
	switch val := raw.(type) {
	case float64:
		price = val
	case json.Number:
		price, err = val.Float64()
	case string:
		price, err = strconv.ParseFloat(strings.TrimSpace(val), 64)
	case int:
		price = float64(val)
	case int64:
		price = float64(val)
	default:
		err = strconv.ErrSyntax
	}

	if err != nil {
		v.Add("가격은 숫자여야 합니다.")
		return 0
	}
	if price <= 0 {
		v.Add("가격은 0보다 커야 합니다.")
		return 0
	}
	return price
}

// validateTags checks that every tag is a non-empty string and returns
// the trimmed list.
func validateTags(raw []string, v *Violations) []string {
	if raw == nil {
		return nil
	}
	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			v.Add("각 태그는 비어있지 않은 문자열이어야 합니다.")
			return nil
		}
		tags = append(tags, trimmed)
	}
	return tags
}

// lengthBetween counts runes, not bytes, so Korean input is measured the
// way users perceive it.
func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}
