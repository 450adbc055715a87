package repository

import (
	"log"

	domain "github.com/Elshan-Aliyev/zcorner-front/internal/core"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type GalleryRepo struct {
	pb *pocketbase.PocketBase
}

func NewGalleryRepo(pb *pocketbase.PocketBase) *GalleryRepo {
	return &GalleryRepo{pb: pb}
}

func (r *GalleryRepo) List() ([]*domain.GalleryItem, error) {
	records, err := r.pb.FindRecordsByFilter(
		"gallery",
		"1=1",
		"position,-created",
		0,
		0,
		nil,
	)
	if err != nil {
		log.Printf("⚠️ Warning: Could not fetch gallery: %v", err)
		return []*domain.GalleryItem{}, nil
	}

	items := make([]*domain.GalleryItem, 0, len(records))
	for _, rec := range records {
		items = append(items, &domain.GalleryItem{
			Id:       rec.Id,
			Title:    rec.GetString("title"),
			Image:    rec.GetString("image"),
			Caption:  rec.GetString("caption"),
			Position: rec.GetInt("position"),
			Created:  rec.GetString("created"),
		})
	}
	return items, nil
}

func (r *GalleryRepo) Create(item *domain.GalleryItem) (*domain.GalleryItem, error) {
	collection, err := r.pb.FindCollectionByNameOrId("gallery")
	if err != nil {
		return nil, err
	}

	rec := core.NewRecord(collection)
	rec.Set("title", item.Title)
	rec.Set("image", item.Image)
	rec.Set("caption", item.Caption)
	rec.Set("position", item.Position)
	if err := r.pb.Save(rec); err != nil {
		return nil, err
	}

	item.Id = rec.Id
	item.Created = rec.GetString("created")
	return item, nil
}

func (r *GalleryRepo) Delete(id string) error {
	rec, err := r.pb.FindRecordById("gallery", id)
	if err != nil {
		return err
	}
	return r.pb.Delete(rec)
}
