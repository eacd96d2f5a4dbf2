// Seeds the database with sample products, articles, and comments for
// local development.
//
// Usage: DATABASE_URL=postgres://... go run scripts/seed_data.go
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/lib/pq"
)

type seedProduct struct {
	name        string
	description string
	price       float64
	tags        []string
}

type seedArticle struct {
	title   string
	content string
}

var products = []seedProduct{
	{"빈티지 자전거", "출퇴근용으로 타던 자전거입니다. 상태 좋습니다.", 150000, []string{"자전거", "중고", "운동"}},
	{"사무용 의자", "허리 받침이 좋은 의자입니다. 직거래만 가능합니다.", 45000, []string{"가구", "의자"}},
	{"기계식 키보드", "갈축 기계식 키보드, 키캡 교체했습니다.", 80000, []string{"전자기기", "키보드"}},
}

var articles = []seedArticle{
	{"자유게시판 이용 안내", "서로 존중하는 커뮤니티를 만들어 주세요. 광고성 게시글은 삭제됩니다."},
	{"중고 거래 꿀팁 공유", "직거래는 항상 사람이 많은 곳에서 하세요. 택배 거래는 안전결제를 이용하세요."},
}

var comments = []string{
	"좋은 정보 감사합니다!",
	"혹시 네고 가능한가요?",
	"저도 같은 제품 쓰고 있는데 만족합니다.",
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	productIDs, err := seedProducts(db)
	if err != nil {
		log.Fatalf("seed products: %v", err)
	}
	articleIDs, err := seedArticles(db)
	if err != nil {
		log.Fatalf("seed articles: %v", err)
	}
	if err := seedComments(db, productIDs, articleIDs); err != nil {
		log.Fatalf("seed comments: %v", err)
	}

	fmt.Printf("seeded %d products, %d articles, %d comment threads\n",
		len(productIDs), len(articleIDs), len(productIDs)+len(articleIDs))
}

func seedProducts(db *sql.DB) ([]int64, error) {
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		var id int64
		err := db.QueryRow(
			`INSERT INTO products (name, description, price, tags) VALUES ($1, $2, $3, $4) RETURNING id`,
			p.name, p.description, p.price, pq.Array(p.tags),
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedArticles(db *sql.DB) ([]int64, error) {
	ids := make([]int64, 0, len(articles))
	for _, a := range articles {
		var id int64
		err := db.QueryRow(
			`INSERT INTO articles (title, content) VALUES ($1, $2) RETURNING id`,
			a.title, a.content,
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedComments(db *sql.DB, productIDs, articleIDs []int64) error {
	insert := func(kind string, parentID int64) error {
		for _, content := range comments {
			if _, err := db.Exec(
				`INSERT INTO comments (content, parent_kind, parent_id) VALUES ($1, $2, $3)`,
				content, kind, parentID,
			); err != nil {
				return err
			}
		}
		return nil
	}

	for _, id := range productIDs {
		if err := insert("product", id); err != nil {
			return err
		}
	}
	for _, id := range articleIDs {
		if err := insert("article", id); err != nil {
			return err
		}
	}
	return nil
}
