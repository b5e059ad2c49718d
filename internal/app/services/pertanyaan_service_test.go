package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
)

type fakePertanyaanRepo struct {
	questions map[int64]*models.Pertanyaan
	nextID    int64
}

func newFakePertanyaanRepo(questions ...*models.Pertanyaan) *fakePertanyaanRepo {
	r := &fakePertanyaanRepo{questions: map[int64]*models.Pertanyaan{}, nextID: 1}
	for _, q := range questions {
		r.questions[q.ID] = q
		if q.ID >= r.nextID {
			r.nextID = q.ID + 1
		}
	}
	return r
}

func (r *fakePertanyaanRepo) CreatePertanyaan(_ context.Context, pertanyaan *models.Pertanyaan) (int64, error) {
	id := r.nextID
	r.nextID++
	stored := *pertanyaan
	stored.ID = id
	r.questions[id] = &stored
	return id, nil
}

func (r *fakePertanyaanRepo) GetPertanyaanByID(_ context.Context, id int64) (*models.Pertanyaan, error) {
	if q, ok := r.questions[id]; ok {
		return q, nil
	}
	return nil, apperrors.ErrPertanyaanNotFound
}

func (r *fakePertanyaanRepo) GetPertanyaanByTahunAkademik(_ context.Context, tahunAkademik string, onlyActive bool) ([]*models.Pertanyaan, error) {
	var out []*models.Pertanyaan
	for _, q := range r.questions {
		if q.TahunAkademik != tahunAkademik {
			continue
		}
		if onlyActive && q.Status != models.PertanyaanActive {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (r *fakePertanyaanRepo) ListPertanyaan(_ context.Context, _ dto.PertanyaanListFilter, _ uint64, _ int) ([]*models.Pertanyaan, int64, error) {
	return nil, 0, nil
}

func (r *fakePertanyaanRepo) GetDistinctTahunAkademik(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, q := range r.questions {
		if !seen[q.TahunAkademik] {
			seen[q.TahunAkademik] = true
			out = append(out, q.TahunAkademik)
		}
	}
	return out, nil
}

func (r *fakePertanyaanRepo) UpdatePertanyaan(_ context.Context, id int64, values map[string]interface{}) error {
	q, ok := r.questions[id]
	if !ok {
		return apperrors.ErrPertanyaanNotFound
	}
	if v, ok := values["name"].(string); ok {
		q.Name = v
	}
	if v, ok := values["slug"].(string); ok {
		q.Slug = v
	}
	if v, ok := values["tahun_akademik"].(string); ok {
		q.TahunAkademik = v
	}
	if v, ok := values["status"].(int16); ok {
		q.Status = v
	}
	return nil
}

func (r *fakePertanyaanRepo) UpdateStatusByTahunAkademik(_ context.Context, tahunAkademik string, status int16) (int64, error) {
	var affected int64
	for _, q := range r.questions {
		if q.TahunAkademik == tahunAkademik {
			q.Status = status
			affected++
		}
	}
	return affected, nil
}

func (r *fakePertanyaanRepo) DeletePertanyaan(_ context.Context, id int64) error {
	if _, ok := r.questions[id]; !ok {
		return apperrors.ErrPertanyaanNotFound
	}
	delete(r.questions, id)
	return nil
}

type fakeChoiceRepo struct {
	choices map[int64]*models.PilihanJawaban
	nextID  int64
}

func newFakeChoiceRepo(choices ...*models.PilihanJawaban) *fakeChoiceRepo {
	r := &fakeChoiceRepo{choices: map[int64]*models.PilihanJawaban{}, nextID: 1}
	for _, c := range choices {
		r.choices[c.ID] = c
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	return r
}

func (r *fakeChoiceRepo) CreatePilihanJawaban(_ context.Context, pilihan *models.PilihanJawaban) (int64, error) {
	id := r.nextID
	r.nextID++
	stored := *pilihan
	stored.ID = id
	r.choices[id] = &stored
	return id, nil
}

func (r *fakeChoiceRepo) GetPilihanJawabanByPertanyaanID(_ context.Context, pertanyaanID int64) ([]models.PilihanJawaban, error) {
	var out []models.PilihanJawaban
	for _, c := range r.choices {
		if c.PertanyaanID == pertanyaanID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func TestCreatePertanyaanGeneratesSlug(t *testing.T) {
	repo := newFakePertanyaanRepo()
	svc := NewPertanyaanService(repo, newFakeChoiceRepo())

	created, err := svc.CreatePertanyaan(context.Background(), dto.CreatePertanyaanRequest{
		Name:          "  Berapa gaji pertama Anda?  ",
		TahunAkademik: " 2023/2024 ",
	})
	if err != nil {
		t.Fatalf("CreatePertanyaan: %v", err)
	}
	if created.Name != "Berapa gaji pertama Anda?" {
		t.Errorf("Name = %q, want trimmed", created.Name)
	}
	if created.TahunAkademik != "2023/2024" {
		t.Errorf("TahunAkademik = %q, want trimmed", created.TahunAkademik)
	}
	if !strings.HasPrefix(created.Slug, "berapa-gaji-pertama-anda-") {
		t.Errorf("Slug = %q, want a slugified name with a suffix", created.Slug)
	}
}

func TestCreatePertanyaanDefaultsInactive(t *testing.T) {
	repo := newFakePertanyaanRepo()
	svc := NewPertanyaanService(repo, newFakeChoiceRepo())

	created, err := svc.CreatePertanyaan(context.Background(), dto.CreatePertanyaanRequest{
		Name:          "Apa pekerjaan Anda saat ini?",
		TahunAkademik: "2023/2024",
	})
	if err != nil {
		t.Fatalf("CreatePertanyaan: %v", err)
	}
	if created.Status != models.PertanyaanInactive {
		t.Errorf("Status = %d, want inactive until the survey is opened", created.Status)
	}

	active := true
	created, err = svc.CreatePertanyaan(context.Background(), dto.CreatePertanyaanRequest{
		Name:          "Berapa lama Anda mencari kerja?",
		TahunAkademik: "2023/2024",
		Status:        &active,
	})
	if err != nil {
		t.Fatalf("CreatePertanyaan: %v", err)
	}
	if created.Status != models.PertanyaanActive {
		t.Errorf("Status = %d, want active when requested", created.Status)
	}
}

func TestCreatePertanyaanRejectsBadTahunAkademik(t *testing.T) {
	svc := NewPertanyaanService(newFakePertanyaanRepo(), newFakeChoiceRepo())

	for _, tahun := range []string{"", "2023", "2023-2024", "23/24"} {
		_, err := svc.CreatePertanyaan(context.Background(), dto.CreatePertanyaanRequest{Name: "Soal", TahunAkademik: tahun})
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("CreatePertanyaan(%q): got %v, want ErrValidationFailed", tahun, err)
		}
	}
}

func TestCopyPertanyaanRejectsSameYear(t *testing.T) {
	svc := NewPertanyaanService(newFakePertanyaanRepo(), newFakeChoiceRepo())

	_, err := svc.CopyPertanyaan(context.Background(), dto.CopyPertanyaanRequest{
		TahunAkademikAsal:   "2023/2024",
		TahunAkademikTujuan: "2023/2024",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want ErrValidationFailed", err)
	}
}

func TestCopyPertanyaanEmptySourceYear(t *testing.T) {
	svc := NewPertanyaanService(newFakePertanyaanRepo(), newFakeChoiceRepo())

	_, err := svc.CopyPertanyaan(context.Background(), dto.CopyPertanyaanRequest{
		TahunAkademikAsal:   "2019/2020",
		TahunAkademikTujuan: "2023/2024",
	})
	if !errors.Is(err, apperrors.ErrPertanyaanNotFound) {
		t.Errorf("got %v, want ErrPertanyaanNotFound", err)
	}
}

func TestCopyPertanyaanCopiesQuestionsAndChoices(t *testing.T) {
	repo := newFakePertanyaanRepo(
		&models.Pertanyaan{ID: 1, Name: "Soal A", Status: models.PertanyaanActive, TahunAkademik: "2022/2023"},
		&models.Pertanyaan{ID: 2, Name: "Soal B", Status: models.PertanyaanInactive, TahunAkademik: "2022/2023"},
	)
	choices := newFakeChoiceRepo(
		&models.PilihanJawaban{ID: 10, PertanyaanID: 1, Name: "Ya"},
		&models.PilihanJawaban{ID: 11, PertanyaanID: 1, Name: "Tidak"},
	)
	svc := NewPertanyaanService(repo, choices)

	result, err := svc.CopyPertanyaan(context.Background(), dto.CopyPertanyaanRequest{
		TahunAkademikAsal:   "2022/2023",
		TahunAkademikTujuan: "2023/2024",
	})
	if err != nil {
		t.Fatalf("CopyPertanyaan: %v", err)
	}
	if result.TotalPertanyaanDisalin != 2 {
		t.Errorf("TotalPertanyaanDisalin = %d, want 2 (inactive questions copy too)", result.TotalPertanyaanDisalin)
	}
	if result.TotalPilihanJawabanDisalin != 2 {
		t.Errorf("TotalPilihanJawabanDisalin = %d, want 2", result.TotalPilihanJawabanDisalin)
	}

	copied, err := repo.GetPertanyaanByTahunAkademik(context.Background(), "2023/2024", false)
	if err != nil {
		t.Fatalf("GetPertanyaanByTahunAkademik: %v", err)
	}
	if len(copied) != 2 {
		t.Fatalf("copied %d questions, want 2", len(copied))
	}
	for _, q := range copied {
		if q.Status != models.PertanyaanInactive {
			t.Errorf("copied question %q status = %d, want inactive", q.Name, q.Status)
		}
	}
}

func TestUpdateStatusByTahunAkademikNoQuestions(t *testing.T) {
	svc := NewPertanyaanService(newFakePertanyaanRepo(), newFakeChoiceRepo())

	_, err := svc.UpdateStatusByTahunAkademik(context.Background(), dto.UpdateStatusByTahunRequest{
		TahunAkademik: "2019/2020",
		Status:        true,
	})
	if !errors.Is(err, apperrors.ErrPertanyaanNotFound) {
		t.Errorf("got %v, want ErrPertanyaanNotFound", err)
	}
}

func TestUpdateStatusByTahunAkademikTogglesAll(t *testing.T) {
	repo := newFakePertanyaanRepo(
		&models.Pertanyaan{ID: 1, Name: "Soal A", Status: models.PertanyaanActive, TahunAkademik: "2022/2023"},
		&models.Pertanyaan{ID: 2, Name: "Soal B", Status: models.PertanyaanActive, TahunAkademik: "2022/2023"},
		&models.Pertanyaan{ID: 3, Name: "Soal lain", Status: models.PertanyaanActive, TahunAkademik: "2023/2024"},
	)
	svc := NewPertanyaanService(repo, newFakeChoiceRepo())

	affected, err := svc.UpdateStatusByTahunAkademik(context.Background(), dto.UpdateStatusByTahunRequest{
		TahunAkademik: "2022/2023",
		Status:        false,
	})
	if err != nil {
		t.Fatalf("UpdateStatusByTahunAkademik: %v", err)
	}
	if affected != 2 {
		t.Errorf("affected = %d, want 2", affected)
	}
	if repo.questions[3].Status != models.PertanyaanActive {
		t.Error("question of another year changed status")
	}
}

func TestUpdatePertanyaanNameRegeneratesSlug(t *testing.T) {
	repo := newFakePertanyaanRepo(
		&models.Pertanyaan{ID: 1, Name: "Lama", Slug: "lama-abc123", Status: models.PertanyaanActive, TahunAkademik: "2023/2024"},
	)
	svc := NewPertanyaanService(repo, newFakeChoiceRepo())

	name := "Nama Baru"
	updated, err := svc.UpdatePertanyaan(context.Background(), 1, dto.UpdatePertanyaanRequest{Name: &name})
	if err != nil {
		t.Fatalf("UpdatePertanyaan: %v", err)
	}
	if updated.Name != "Nama Baru" {
		t.Errorf("Name = %q, want %q", updated.Name, "Nama Baru")
	}
	if !strings.HasPrefix(updated.Slug, "nama-baru-") {
		t.Errorf("Slug = %q, want regenerated from the new name", updated.Slug)
	}
}
