package repository

import (
	"errors"
	"fmt"
	"log"

	domain "github.com/Elshan-Aliyev/zcorner-front/internal/core"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type ProductRepo struct {
	pb *pocketbase.PocketBase
}

func NewProductRepo(pb *pocketbase.PocketBase) *ProductRepo {
	return &ProductRepo{pb: pb}
}

// List returns products for a storefront page ("wishlist" or
// "marketplace"), ordered by position then recency. limit <= 0 means
// no limit. A read failure degrades to an empty list.
func (r *ProductRepo) List(page string, limit int) ([]*domain.Product, error) {
	filter := "1=1"
	if page != "" {
		filter = fmt.Sprintf("page='%s'", page)
	}

	records, err := r.pb.FindRecordsByFilter(
		"products",
		filter,
		"position,-created",
		limit,
		0,
		nil,
	)
	if err != nil {
		log.Printf("⚠️ Warning: Could not fetch products (page=%s): %v", page, err)
		return []*domain.Product{}, nil
	}

	products := make([]*domain.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, recordToProduct(rec))
	}
	return products, nil
}

func (r *ProductRepo) GetByID(id string) (*domain.Product, error) {
	rec, err := r.pb.FindRecordById("products", id)
	if err != nil {
		return nil, err
	}
	return recordToProduct(rec), nil
}

func (r *ProductRepo) Create(p *domain.Product) (*domain.Product, error) {
	collection, err := r.pb.FindCollectionByNameOrId("products")
	if err != nil {
		return nil, err
	}

	rec := core.NewRecord(collection)
	setProductFields(rec, p)
	if err := r.pb.Save(rec); err != nil {
		return nil, err
	}
	return recordToProduct(rec), nil
}

func (r *ProductRepo) Update(p *domain.Product) error {
	if p.Id == "" {
		return errors.New("product id is required")
	}
	rec, err := r.pb.FindRecordById("products", p.Id)
	if err != nil {
		return err
	}
	setProductFields(rec, p)
	return r.pb.Save(rec)
}

func (r *ProductRepo) Delete(id string) error {
	rec, err := r.pb.FindRecordById("products", id)
	if err != nil {
		return err
	}
	return r.pb.Delete(rec)
}

func setProductFields(rec *core.Record, p *domain.Product) {
	rec.Set("title", p.Title)
	rec.Set("price", p.Price)
	rec.Set("description", p.Description)
	rec.Set("images", p.Images)
	rec.Set("page", p.Page)
	rec.Set("buy_enabled", p.BuyEnabled)
	rec.Set("detail_enabled", p.DetailEnabled)
	rec.Set("buy_link", p.BuyLink)
	rec.Set("detail_link", p.DetailLink)
	rec.Set("position", p.Position)
}

func recordToProduct(rec *core.Record) *domain.Product {
	images := []string{}
	if err := rec.UnmarshalJSONField("images", &images); err != nil {
		images = []string{}
	}

	return &domain.Product{
		Id:            rec.Id,
		Title:         rec.GetString("title"),
		Price:         rec.GetFloat("price"),
		Description:   rec.GetString("description"),
		Images:        images,
		Page:          rec.GetString("page"),
		BuyEnabled:    rec.GetBool("buy_enabled"),
		DetailEnabled: rec.GetBool("detail_enabled"),
		BuyLink:       rec.GetString("buy_link"),
		DetailLink:    rec.GetString("detail_link"),
		Position:      rec.GetInt("position"),
		Created:       rec.GetString("created"),
		Updated:       rec.GetString("updated"),
	}
}
