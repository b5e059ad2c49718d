package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
)

type fakeBiodataRepo struct {
	items  map[int64]*models.Biodata
	nextID int64
}

func newFakeBiodataRepo(items ...*models.Biodata) *fakeBiodataRepo {
	r := &fakeBiodataRepo{items: map[int64]*models.Biodata{}, nextID: 1}
	for _, b := range items {
		r.items[b.ID] = b
		if b.ID >= r.nextID {
			r.nextID = b.ID + 1
		}
	}
	return r
}

func (r *fakeBiodataRepo) CreateBiodata(_ context.Context, biodata *models.Biodata) (int64, error) {
	for _, b := range r.items {
		if b.UserID == biodata.UserID {
			return 0, apperrors.ErrBiodataAlreadyExists
		}
	}
	id := r.nextID
	r.nextID++
	stored := *biodata
	stored.ID = id
	r.items[id] = &stored
	return id, nil
}

func (r *fakeBiodataRepo) GetBiodataByID(_ context.Context, id int64) (*models.Biodata, error) {
	if b, ok := r.items[id]; ok {
		return b, nil
	}
	return nil, apperrors.ErrBiodataNotFound
}

func (r *fakeBiodataRepo) GetBiodataByUserID(_ context.Context, userID int64) (*models.Biodata, error) {
	for _, b := range r.items {
		if b.UserID == userID {
			return b, nil
		}
	}
	return nil, apperrors.ErrBiodataNotFound
}

func (r *fakeBiodataRepo) UpdateBiodata(_ context.Context, id int64, values map[string]interface{}) error {
	b, ok := r.items[id]
	if !ok {
		return apperrors.ErrBiodataNotFound
	}
	if v, ok := values["image"].(string); ok {
		b.Image = &v
	}
	if v, ok := values["alamat"].(string); ok {
		b.Alamat = &v
	}
	return nil
}

func (r *fakeBiodataRepo) DeleteBiodata(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrBiodataNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeBiodataRepo) ListBiodata(_ context.Context, _ dto.BiodataListFilter, _ uint64, _ int) ([]*models.Biodata, int64, error) {
	return nil, 0, nil
}

type fakeUserReader struct {
	users map[int64]*models.User
}

func (r *fakeUserReader) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

type fakeFileStorage struct {
	saved   []string
	deleted []string
	nextN   int
}

func (s *fakeFileStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	s.nextN++
	name := fmt.Sprintf("stored-%d-%s", s.nextN, fileHeader.Filename)
	s.saved = append(s.saved, name)
	return name, nil
}

func (s *fakeFileStorage) DeleteFile(filePath string) error {
	s.deleted = append(s.deleted, filePath)
	return nil
}

func (s *fakeFileStorage) FileURL(filename string) string {
	return "http://localhost:8080/uploads/" + filename
}

func alumniWithStudi(id int64) *models.User {
	fakultasID := int64(2)
	programStudiID := int64(5)
	return &models.User{
		ID:             id,
		FakultasID:     &fakultasID,
		ProgramStudiID: &programStudiID,
		RoleAs:         models.RoleAlumni,
		NomorInduk:     "2019010101",
		Name:           "Budi Santoso",
		Email:          "budi@kampus.ac.id",
	}
}

func newBiodataFixture(repo *fakeBiodataRepo) (*fakeFileStorage, BiodataService) {
	storage := &fakeFileStorage{}
	users := &fakeUserReader{users: map[int64]*models.User{1: alumniWithStudi(1)}}
	return storage, NewBiodataService(repo, users, storage)
}

func TestCreateBiodataRequiresPhoto(t *testing.T) {
	_, svc := newBiodataFixture(newFakeBiodataRepo())

	_, err := svc.CreateBiodata(context.Background(), 1, dto.CreateBiodataRequest{}, nil)
	if !errors.Is(err, apperrors.ErrBiodataImageRequired) {
		t.Errorf("got %v, want ErrBiodataImageRequired", err)
	}
}

func TestCreateBiodataRequiresStudiAssignment(t *testing.T) {
	storage := &fakeFileStorage{}
	users := &fakeUserReader{users: map[int64]*models.User{
		1: {ID: 1, RoleAs: models.RoleAlumni, Name: "Budi"},
	}}
	svc := NewBiodataService(newFakeBiodataRepo(), users, storage)

	_, err := svc.CreateBiodata(context.Background(), 1, dto.CreateBiodataRequest{}, &multipart.FileHeader{Filename: "foto.jpg"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want ErrValidationFailed", err)
	}
	if len(storage.saved) != 0 {
		t.Errorf("photo stored before validation: %v", storage.saved)
	}
}

func TestCreateBiodataDenormalizesAccountFields(t *testing.T) {
	_, svc := newBiodataFixture(newFakeBiodataRepo())

	biodata, err := svc.CreateBiodata(context.Background(), 1, dto.CreateBiodataRequest{
		TempatLahir:  "Bandung",
		TanggalLahir: "1998-04-17",
	}, &multipart.FileHeader{Filename: "foto.jpg"})
	if err != nil {
		t.Fatalf("CreateBiodata: %v", err)
	}
	if biodata.FakultasID != 2 || biodata.ProgramStudiID != 5 {
		t.Errorf("fakultas/program studi = %d/%d, want copied from the account", biodata.FakultasID, biodata.ProgramStudiID)
	}
	if biodata.NPM == nil || *biodata.NPM != "2019010101" {
		t.Errorf("NPM = %v, want the account nomor induk", biodata.NPM)
	}
	if biodata.Name != "Budi Santoso" {
		t.Errorf("Name = %q, want the account name", biodata.Name)
	}
	if biodata.TanggalLahir == nil || biodata.TanggalLahir.Format("2006-01-02") != "1998-04-17" {
		t.Errorf("TanggalLahir = %v, want parsed date", biodata.TanggalLahir)
	}
}

func TestCreateBiodataDuplicateRemovesStoredPhoto(t *testing.T) {
	repo := newFakeBiodataRepo()
	storage, svc := newBiodataFixture(repo)

	if _, err := svc.CreateBiodata(context.Background(), 1, dto.CreateBiodataRequest{}, &multipart.FileHeader{Filename: "foto.jpg"}); err != nil {
		t.Fatalf("first CreateBiodata: %v", err)
	}

	_, err := svc.CreateBiodata(context.Background(), 1, dto.CreateBiodataRequest{}, &multipart.FileHeader{Filename: "foto2.jpg"})
	if !errors.Is(err, apperrors.ErrBiodataAlreadyExists) {
		t.Fatalf("got %v, want ErrBiodataAlreadyExists", err)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != storage.saved[1] {
		t.Errorf("orphaned photo not cleaned up, deleted = %v, saved = %v", storage.deleted, storage.saved)
	}
}

func TestUpdateBiodataReplacesPhoto(t *testing.T) {
	oldImage := "old-foto.jpg"
	repo := newFakeBiodataRepo(&models.Biodata{
		ID: 3, UserID: 1, FakultasID: 2, ProgramStudiID: 5, Name: "Budi Santoso", Image: &oldImage,
	})
	storage, svc := newBiodataFixture(repo)

	updated, err := svc.UpdateBiodata(context.Background(), 1, dto.UpdateBiodataRequest{}, &multipart.FileHeader{Filename: "baru.jpg"})
	if err != nil {
		t.Fatalf("UpdateBiodata: %v", err)
	}
	if updated.Image == nil || *updated.Image == oldImage {
		t.Errorf("Image = %v, want the new photo", updated.Image)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != oldImage {
		t.Errorf("deleted = %v, want the replaced photo %q", storage.deleted, oldImage)
	}
}

func TestDeleteBiodataRemovesPhoto(t *testing.T) {
	image := "foto.jpg"
	repo := newFakeBiodataRepo(&models.Biodata{
		ID: 3, UserID: 1, FakultasID: 2, ProgramStudiID: 5, Name: "Budi Santoso", Image: &image,
	})
	storage, svc := newBiodataFixture(repo)

	if err := svc.DeleteBiodata(context.Background(), 3); err != nil {
		t.Fatalf("DeleteBiodata: %v", err)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != image {
		t.Errorf("deleted = %v, want %q", storage.deleted, image)
	}
	if _, err := repo.GetBiodataByID(context.Background(), 3); !errors.Is(err, apperrors.ErrBiodataNotFound) {
		t.Errorf("profile still present after delete: %v", err)
	}
}

func TestPhotoURL(t *testing.T) {
	_, svc := newBiodataFixture(newFakeBiodataRepo())

	if url := svc.PhotoURL(nil); url != nil {
		t.Errorf("PhotoURL(nil) = %v, want nil", url)
	}
	if url := svc.PhotoURL(&models.Biodata{}); url != nil {
		t.Errorf("PhotoURL without image = %v, want nil", url)
	}
	image := "foto.jpg"
	url := svc.PhotoURL(&models.Biodata{Image: &image})
	if url == nil || *url != "http://localhost:8080/uploads/foto.jpg" {
		t.Errorf("PhotoURL = %v, want the public upload URL", url)
	}
}
