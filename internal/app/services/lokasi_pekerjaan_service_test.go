package services

import (
	"context"
	"errors"
	"testing"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
)

type fakeLokasiRepo struct {
	items  map[int64]*models.LokasiPekerjaan
	nextID int64
}

func newFakeLokasiRepo(items ...*models.LokasiPekerjaan) *fakeLokasiRepo {
	r := &fakeLokasiRepo{items: map[int64]*models.LokasiPekerjaan{}, nextID: 1}
	for _, l := range items {
		r.items[l.ID] = l
		if l.ID >= r.nextID {
			r.nextID = l.ID + 1
		}
	}
	return r
}

func (r *fakeLokasiRepo) CreateLokasiPekerjaan(_ context.Context, lokasi *models.LokasiPekerjaan) (int64, error) {
	id := r.nextID
	r.nextID++
	stored := *lokasi
	stored.ID = id
	r.items[id] = &stored
	return id, nil
}

func (r *fakeLokasiRepo) GetLokasiPekerjaanByID(_ context.Context, id int64) (*models.LokasiPekerjaan, error) {
	if l, ok := r.items[id]; ok {
		return l, nil
	}
	return nil, apperrors.ErrLokasiPekerjaanMissing
}

func (r *fakeLokasiRepo) UpdateLokasiPekerjaan(_ context.Context, id int64, values map[string]interface{}) error {
	l, ok := r.items[id]
	if !ok {
		return apperrors.ErrLokasiPekerjaanMissing
	}
	if v, ok := values["provinsi_id"].(int64); ok {
		l.ProvinsiID = v
	}
	if v, ok := values["kota_id"].(string); ok {
		l.KotaID = v
	}
	if v, ok := values["company_name"].(string); ok {
		l.CompanyName = &v
	}
	return nil
}

func (r *fakeLokasiRepo) DeleteLokasiPekerjaan(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrLokasiPekerjaanMissing
	}
	delete(r.items, id)
	return nil
}

func (r *fakeLokasiRepo) ListLokasiPekerjaanRows(_ context.Context, _ dto.LokasiPekerjaanListFilter, _ uint64, _ int) ([]*models.LokasiPekerjaanRow, int64, error) {
	return nil, 0, nil
}

type fakeWilayahReader struct {
	provinsi map[int64]*models.Provinsi
	kota     map[string]*models.Kota
}

func (r *fakeWilayahReader) GetProvinsiByID(_ context.Context, id int64) (*models.Provinsi, error) {
	if p, ok := r.provinsi[id]; ok {
		return p, nil
	}
	return nil, apperrors.ErrProvinsiNotFound
}

func (r *fakeWilayahReader) GetKotaByID(_ context.Context, id string) (*models.Kota, error) {
	if k, ok := r.kota[id]; ok {
		return k, nil
	}
	return nil, apperrors.ErrKotaNotFound
}

func newLokasiFixture(repo *fakeLokasiRepo) LokasiPekerjaanService {
	regions := &fakeWilayahReader{
		provinsi: map[int64]*models.Provinsi{
			11: {ID: 11, Name: "Aceh"},
			32: {ID: 32, Name: "Jawa Barat"},
		},
		kota: map[string]*models.Kota{
			"11.01": {ID: "11.01", ProvinsiID: 11, Name: "Kab. Aceh Selatan"},
			"32.73": {ID: "32.73", ProvinsiID: 32, Name: "Kota Bandung"},
		},
	}
	users := &fakeUserReader{users: map[int64]*models.User{1: alumniWithStudi(1)}}
	return NewLokasiPekerjaanService(repo, regions, users)
}

func TestCreateLokasiPekerjaanDenormalizesStudi(t *testing.T) {
	svc := newLokasiFixture(newFakeLokasiRepo())

	company := "PT Maju Jaya"
	lokasi, err := svc.CreateLokasiPekerjaan(context.Background(), 1, dto.CreateLokasiPekerjaanRequest{
		ProvinsiID:  32,
		KotaID:      "32.73",
		CompanyName: &company,
	})
	if err != nil {
		t.Fatalf("CreateLokasiPekerjaan: %v", err)
	}
	if lokasi.FakultasID != 2 || lokasi.ProgramStudiID != 5 {
		t.Errorf("fakultas/program studi = %d/%d, want copied from the account", lokasi.FakultasID, lokasi.ProgramStudiID)
	}
	if lokasi.UserID != 1 {
		t.Errorf("UserID = %d, want 1", lokasi.UserID)
	}
}

func TestCreateLokasiPekerjaanRejectsKotaOutsideProvinsi(t *testing.T) {
	svc := newLokasiFixture(newFakeLokasiRepo())

	_, err := svc.CreateLokasiPekerjaan(context.Background(), 1, dto.CreateLokasiPekerjaanRequest{
		ProvinsiID: 11,
		KotaID:     "32.73",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want ErrValidationFailed", err)
	}
}

func TestCreateLokasiPekerjaanUnknownRegion(t *testing.T) {
	svc := newLokasiFixture(newFakeLokasiRepo())

	_, err := svc.CreateLokasiPekerjaan(context.Background(), 1, dto.CreateLokasiPekerjaanRequest{
		ProvinsiID: 99,
		KotaID:     "32.73",
	})
	if !errors.Is(err, apperrors.ErrProvinsiNotFound) {
		t.Errorf("got %v, want ErrProvinsiNotFound", err)
	}

	_, err = svc.CreateLokasiPekerjaan(context.Background(), 1, dto.CreateLokasiPekerjaanRequest{
		ProvinsiID: 11,
		KotaID:     "99.99",
	})
	if !errors.Is(err, apperrors.ErrKotaNotFound) {
		t.Errorf("got %v, want ErrKotaNotFound", err)
	}
}

func TestUpdateLokasiPekerjaanOwnershipCheck(t *testing.T) {
	repo := newFakeLokasiRepo(&models.LokasiPekerjaan{
		ID: 5, UserID: 2, ProvinsiID: 11, KotaID: "11.01", FakultasID: 2, ProgramStudiID: 5,
	})
	svc := newLokasiFixture(repo)

	company := "PT Lain"
	_, err := svc.UpdateLokasiPekerjaan(context.Background(), 5, 1, dto.UpdateLokasiPekerjaanRequest{CompanyName: &company})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("got %v, want ErrPermissionDenied", err)
	}
}

func TestUpdateLokasiPekerjaanRevalidatesRegionPair(t *testing.T) {
	repo := newFakeLokasiRepo(&models.LokasiPekerjaan{
		ID: 5, UserID: 1, ProvinsiID: 11, KotaID: "11.01", FakultasID: 2, ProgramStudiID: 5,
	})
	svc := newLokasiFixture(repo)

	// Changing only the province must be checked against the stored kota
	provinsiID := int64(32)
	_, err := svc.UpdateLokasiPekerjaan(context.Background(), 5, 1, dto.UpdateLokasiPekerjaanRequest{ProvinsiID: &provinsiID})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want ErrValidationFailed", err)
	}

	kotaID := "32.73"
	updated, err := svc.UpdateLokasiPekerjaan(context.Background(), 5, 1, dto.UpdateLokasiPekerjaanRequest{
		ProvinsiID: &provinsiID,
		KotaID:     &kotaID,
	})
	if err != nil {
		t.Fatalf("UpdateLokasiPekerjaan: %v", err)
	}
	if updated.ProvinsiID != 32 || updated.KotaID != "32.73" {
		t.Errorf("region = %d/%s, want 32/32.73", updated.ProvinsiID, updated.KotaID)
	}
}

func TestDeleteLokasiPekerjaanOwnerAndAdmin(t *testing.T) {
	repo := newFakeLokasiRepo(
		&models.LokasiPekerjaan{ID: 5, UserID: 2, ProvinsiID: 11, KotaID: "11.01", FakultasID: 2, ProgramStudiID: 5},
		&models.LokasiPekerjaan{ID: 6, UserID: 2, ProvinsiID: 11, KotaID: "11.01", FakultasID: 2, ProgramStudiID: 5},
	)
	svc := newLokasiFixture(repo)

	otherUser := int64(1)
	if err := svc.DeleteLokasiPekerjaan(context.Background(), 5, &otherUser); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("got %v, want ErrPermissionDenied", err)
	}

	owner := int64(2)
	if err := svc.DeleteLokasiPekerjaan(context.Background(), 5, &owner); err != nil {
		t.Errorf("owner delete: %v", err)
	}

	// nil owner is the admin path, any row may go
	if err := svc.DeleteLokasiPekerjaan(context.Background(), 6, nil); err != nil {
		t.Errorf("admin delete: %v", err)
	}
}
