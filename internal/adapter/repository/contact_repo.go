package repository

import (
	domain "github.com/Elshan-Aliyev/zcorner-front/internal/core"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type ContactRepo struct {
	pb *pocketbase.PocketBase
}

func NewContactRepo(pb *pocketbase.PocketBase) *ContactRepo {
	return &ContactRepo{pb: pb}
}

func (r *ContactRepo) Create(msg *domain.ContactMessage) error {
	collection, err := r.pb.FindCollectionByNameOrId("contacts")
	if err != nil {
		return err
	}

	rec := core.NewRecord(collection)
	rec.Set("first_name", msg.FirstName)
	rec.Set("last_name", msg.LastName)
	rec.Set("email", msg.Email)
	rec.Set("phone", msg.Phone)
	rec.Set("message", msg.Message)
	rec.Set("type", msg.Type)

	if err := r.pb.Save(rec); err != nil {
		return err
	}
	msg.Id = rec.Id
	msg.Created = rec.GetString("created")
	return nil
}
