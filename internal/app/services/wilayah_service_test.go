package services

import (
	"context"
	"testing"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
	"github.com/hanifz/tracerstudy/internal/pkg/wilayah"
)

type fakeWilayahRepo struct {
	provinsi map[int64]*models.Provinsi
	kota     map[string]*models.Kota
}

func newFakeWilayahRepo() *fakeWilayahRepo {
	return &fakeWilayahRepo{
		provinsi: map[int64]*models.Provinsi{},
		kota:     map[string]*models.Kota{},
	}
}

func (r *fakeWilayahRepo) UpsertProvinsi(_ context.Context, provinsi *models.Provinsi) error {
	r.provinsi[provinsi.ID] = provinsi
	return nil
}

func (r *fakeWilayahRepo) UpsertKota(_ context.Context, kota *models.Kota) error {
	r.kota[kota.ID] = kota
	return nil
}

func (r *fakeWilayahRepo) GetAllProvinsi(_ context.Context) ([]*models.Provinsi, error) {
	var out []*models.Provinsi
	for _, p := range r.provinsi {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeWilayahRepo) GetKotaByProvinsi(_ context.Context, provinsiID int64) ([]*models.Kota, error) {
	var out []*models.Kota
	for _, k := range r.kota {
		if k.ProvinsiID == provinsiID {
			out = append(out, k)
		}
	}
	return out, nil
}

func (r *fakeWilayahRepo) GetProvinsiByID(_ context.Context, id int64) (*models.Provinsi, error) {
	if p, ok := r.provinsi[id]; ok {
		return p, nil
	}
	return nil, apperrors.ErrProvinsiNotFound
}

func (r *fakeWilayahRepo) GetKotaByID(_ context.Context, id string) (*models.Kota, error) {
	if k, ok := r.kota[id]; ok {
		return k, nil
	}
	return nil, apperrors.ErrKotaNotFound
}

type fakeWilayahFetcher struct {
	provinces []wilayah.Region
	regencies map[string][]wilayah.Region
}

func (f *fakeWilayahFetcher) GetProvinces(_ context.Context) ([]wilayah.Region, error) {
	return f.provinces, nil
}

func (f *fakeWilayahFetcher) GetRegencies(_ context.Context, provinceCode string) ([]wilayah.Region, error) {
	return f.regencies[provinceCode], nil
}

func TestImportProvinsiSkipsNonNumericCodes(t *testing.T) {
	repo := newFakeWilayahRepo()
	fetcher := &fakeWilayahFetcher{provinces: []wilayah.Region{
		{Code: "11", Name: "Aceh"},
		{Code: " 32 ", Name: "Jawa Barat"},
		{Code: "bad-code", Name: "Rusak"},
	}}
	svc := NewWilayahService(repo, fetcher)

	result, err := svc.ImportProvinsi(context.Background())
	if err != nil {
		t.Fatalf("ImportProvinsi: %v", err)
	}
	if result.TotalProvinsi != 2 {
		t.Errorf("TotalProvinsi = %d, want 2", result.TotalProvinsi)
	}
	if repo.provinsi[11] == nil || repo.provinsi[11].Name != "Aceh" {
		t.Errorf("provinsi 11 = %+v, want Aceh", repo.provinsi[11])
	}
	if repo.provinsi[32] == nil {
		t.Error("provinsi with padded code not stored")
	}
}

func TestImportProvinsiIsIdempotent(t *testing.T) {
	repo := newFakeWilayahRepo()
	fetcher := &fakeWilayahFetcher{provinces: []wilayah.Region{{Code: "11", Name: "Aceh"}}}
	svc := NewWilayahService(repo, fetcher)

	for i := 0; i < 2; i++ {
		if _, err := svc.ImportProvinsi(context.Background()); err != nil {
			t.Fatalf("ImportProvinsi run %d: %v", i+1, err)
		}
	}
	if len(repo.provinsi) != 1 {
		t.Errorf("stored %d provinsi after two imports, want 1", len(repo.provinsi))
	}
}

func TestImportKotaWalksStoredProvinces(t *testing.T) {
	repo := newFakeWilayahRepo()
	repo.provinsi[11] = &models.Provinsi{ID: 11, Name: "Aceh"}
	repo.provinsi[32] = &models.Provinsi{ID: 32, Name: "Jawa Barat"}

	fetcher := &fakeWilayahFetcher{regencies: map[string][]wilayah.Region{
		"11": {{Code: "11.01", Name: "Kab. Aceh Selatan"}},
		"32": {{Code: "32.73", Name: "Kota Bandung"}, {Code: " 32.04 ", Name: "Kab. Bandung"}},
	}}
	svc := NewWilayahService(repo, fetcher)

	result, err := svc.ImportKota(context.Background())
	if err != nil {
		t.Fatalf("ImportKota: %v", err)
	}
	if result.TotalProvinsi != 2 || result.TotalKota != 3 {
		t.Errorf("result = %+v, want 2 provinsi and 3 kota", result)
	}

	kota, ok := repo.kota["32.04"]
	if !ok {
		t.Fatal("kota code not trimmed before storing")
	}
	if kota.ProvinsiID != 32 {
		t.Errorf("kota provinsi = %d, want 32", kota.ProvinsiID)
	}
}
