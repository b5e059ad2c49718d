package services

import (
	"context"
	"errors"
	"testing"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
)

type fakeJawabanRepo struct {
	items  map[int64]*models.JawabanKuesioner
	nextID int64
}

func newFakeJawabanRepo(items ...*models.JawabanKuesioner) *fakeJawabanRepo {
	r := &fakeJawabanRepo{items: map[int64]*models.JawabanKuesioner{}, nextID: 1}
	for _, j := range items {
		r.items[j.ID] = j
		if j.ID >= r.nextID {
			r.nextID = j.ID + 1
		}
	}
	return r
}

func (r *fakeJawabanRepo) CreateJawaban(_ context.Context, jawaban *models.JawabanKuesioner) (int64, error) {
	id := r.nextID
	r.nextID++
	stored := *jawaban
	stored.ID = id
	r.items[id] = &stored
	return id, nil
}

func (r *fakeJawabanRepo) GetJawabanByID(_ context.Context, id int64) (*models.JawabanKuesioner, error) {
	if j, ok := r.items[id]; ok {
		return j, nil
	}
	return nil, apperrors.ErrJawabanNotFound
}

func (r *fakeJawabanRepo) GetJawabanByUserAndPertanyaan(_ context.Context, userID, pertanyaanID int64) (*models.JawabanKuesioner, error) {
	for _, j := range r.items {
		if j.UserID == userID && j.PertanyaanID == pertanyaanID {
			return j, nil
		}
	}
	return nil, apperrors.ErrJawabanNotFound
}

func (r *fakeJawabanRepo) GetJawabanByUser(_ context.Context, userID int64, _ *string) ([]*models.JawabanKuesioner, error) {
	var out []*models.JawabanKuesioner
	for _, j := range r.items {
		if j.UserID == userID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJawabanRepo) UpdateJawaban(_ context.Context, id int64, values map[string]interface{}) error {
	j, ok := r.items[id]
	if !ok {
		return apperrors.ErrJawabanNotFound
	}
	if v, ok := values["pilihan_jawaban_id"]; ok {
		if v == nil {
			j.PilihanJawabanID = nil
		} else {
			choiceID := v.(int64)
			j.PilihanJawabanID = &choiceID
		}
	}
	if v, ok := values["jawaban_teks"]; ok {
		if v == nil {
			j.JawabanTeks = nil
		} else {
			teks := v.(string)
			j.JawabanTeks = &teks
		}
	}
	return nil
}

func (r *fakeJawabanRepo) DeleteJawaban(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrJawabanNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeJawabanRepo) ListJawabanRows(_ context.Context, _ dto.JawabanListFilter, _ uint64, _ int) ([]*models.JawabanKuesionerRow, int64, error) {
	return nil, 0, nil
}

type fakePertanyaanReader struct {
	questions map[int64]*models.Pertanyaan
}

func (r *fakePertanyaanReader) GetPertanyaanByID(_ context.Context, id int64) (*models.Pertanyaan, error) {
	if q, ok := r.questions[id]; ok {
		return q, nil
	}
	return nil, apperrors.ErrPertanyaanNotFound
}

type fakeChoiceReader struct {
	choices map[int64]*models.PilihanJawaban
}

func (r *fakeChoiceReader) GetPilihanJawabanByID(_ context.Context, id int64) (*models.PilihanJawaban, error) {
	if c, ok := r.choices[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrPilihanJawabanNotFound
}

func newJawabanFixture() (*fakeJawabanRepo, JawabanService) {
	repo := newFakeJawabanRepo()
	questions := &fakePertanyaanReader{questions: map[int64]*models.Pertanyaan{
		10: {ID: 10, Name: "Berapa lama waktu tunggu kerja?", Status: models.PertanyaanActive, TahunAkademik: "2023/2024"},
		11: {ID: 11, Name: "Pertanyaan lama", Status: models.PertanyaanInactive, TahunAkademik: "2020/2021"},
	}}
	choices := &fakeChoiceReader{choices: map[int64]*models.PilihanJawaban{
		100: {ID: 100, PertanyaanID: 10, Name: "< 3 bulan"},
		200: {ID: 200, PertanyaanID: 99, Name: "Pilihan soal lain"},
	}}
	return repo, NewJawabanService(repo, questions, choices)
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestCreateJawabanRequiresAnAnswer(t *testing.T) {
	_, svc := newJawabanFixture()

	cases := []dto.CreateJawabanRequest{
		{},
		{JawabanTeks: strPtr("   ")},
	}
	for _, req := range cases {
		_, err := svc.CreateJawaban(context.Background(), 1, 10, req)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("CreateJawaban(%+v): got %v, want ErrValidationFailed", req, err)
		}
	}
}

func TestCreateJawabanRejectsInactiveQuestion(t *testing.T) {
	_, svc := newJawabanFixture()

	_, err := svc.CreateJawaban(context.Background(), 1, 11, dto.CreateJawabanRequest{JawabanTeks: strPtr("jawaban")})
	if !errors.Is(err, apperrors.ErrPertanyaanInactive) {
		t.Errorf("got %v, want ErrPertanyaanInactive", err)
	}
}

func TestCreateJawabanRejectsDuplicate(t *testing.T) {
	_, svc := newJawabanFixture()

	if _, err := svc.CreateJawaban(context.Background(), 1, 10, dto.CreateJawabanRequest{JawabanTeks: strPtr("pertama")}); err != nil {
		t.Fatalf("first CreateJawaban: %v", err)
	}
	_, err := svc.CreateJawaban(context.Background(), 1, 10, dto.CreateJawabanRequest{JawabanTeks: strPtr("kedua")})
	if !errors.Is(err, apperrors.ErrJawabanAlreadyExists) {
		t.Errorf("got %v, want ErrJawabanAlreadyExists", err)
	}
}

func TestCreateJawabanChoiceWinsOverText(t *testing.T) {
	_, svc := newJawabanFixture()

	jawaban, err := svc.CreateJawaban(context.Background(), 1, 10, dto.CreateJawabanRequest{
		PilihanJawabanID: int64Ptr(100),
		JawabanTeks:      strPtr("teks bebas"),
	})
	if err != nil {
		t.Fatalf("CreateJawaban: %v", err)
	}
	if jawaban.PilihanJawabanID == nil || *jawaban.PilihanJawabanID != 100 {
		t.Errorf("PilihanJawabanID = %v, want 100", jawaban.PilihanJawabanID)
	}
	if jawaban.JawabanTeks != nil {
		t.Errorf("JawabanTeks = %q, want nil", *jawaban.JawabanTeks)
	}
	if jawaban.TahunAkademik != "2023/2024" {
		t.Errorf("TahunAkademik = %q, want denormalized from the question", jawaban.TahunAkademik)
	}
}

func TestCreateJawabanRejectsForeignChoice(t *testing.T) {
	_, svc := newJawabanFixture()

	_, err := svc.CreateJawaban(context.Background(), 1, 10, dto.CreateJawabanRequest{PilihanJawabanID: int64Ptr(200)})
	if !errors.Is(err, apperrors.ErrPilihanJawabanMismatch) {
		t.Errorf("got %v, want ErrPilihanJawabanMismatch", err)
	}
}

func TestUpdateJawabanChoiceClearsText(t *testing.T) {
	_, svc := newJawabanFixture()

	if _, err := svc.CreateJawaban(context.Background(), 1, 10, dto.CreateJawabanRequest{JawabanTeks: strPtr("awalnya teks")}); err != nil {
		t.Fatalf("CreateJawaban: %v", err)
	}

	updated, err := svc.UpdateJawaban(context.Background(), 1, 10, dto.UpdateJawabanRequest{PilihanJawabanID: int64Ptr(100)})
	if err != nil {
		t.Fatalf("UpdateJawaban: %v", err)
	}
	if updated.PilihanJawabanID == nil || *updated.PilihanJawabanID != 100 {
		t.Errorf("PilihanJawabanID = %v, want 100", updated.PilihanJawabanID)
	}
	if updated.JawabanTeks != nil {
		t.Errorf("JawabanTeks = %v, want nil after switching to a choice", updated.JawabanTeks)
	}
}

func TestUpdateJawabanTextClearsChoice(t *testing.T) {
	_, svc := newJawabanFixture()

	if _, err := svc.CreateJawaban(context.Background(), 1, 10, dto.CreateJawabanRequest{PilihanJawabanID: int64Ptr(100)}); err != nil {
		t.Fatalf("CreateJawaban: %v", err)
	}

	updated, err := svc.UpdateJawaban(context.Background(), 1, 10, dto.UpdateJawabanRequest{JawabanTeks: strPtr("  sekarang teks  ")})
	if err != nil {
		t.Fatalf("UpdateJawaban: %v", err)
	}
	if updated.PilihanJawabanID != nil {
		t.Errorf("PilihanJawabanID = %v, want nil after switching to text", updated.PilihanJawabanID)
	}
	if updated.JawabanTeks == nil || *updated.JawabanTeks != "sekarang teks" {
		t.Errorf("JawabanTeks = %v, want trimmed text", updated.JawabanTeks)
	}
}

func TestUpdateJawabanEmptyBodyChangesNothing(t *testing.T) {
	_, svc := newJawabanFixture()

	created, err := svc.CreateJawaban(context.Background(), 1, 10, dto.CreateJawabanRequest{JawabanTeks: strPtr("tetap")})
	if err != nil {
		t.Fatalf("CreateJawaban: %v", err)
	}

	updated, err := svc.UpdateJawaban(context.Background(), 1, 10, dto.UpdateJawabanRequest{})
	if err != nil {
		t.Fatalf("UpdateJawaban: %v", err)
	}
	if updated.ID != created.ID || updated.JawabanTeks == nil || *updated.JawabanTeks != "tetap" {
		t.Errorf("answer changed on empty update: %+v", updated)
	}
}

func TestUpdateJawabanRejectsEmptyText(t *testing.T) {
	_, svc := newJawabanFixture()

	if _, err := svc.CreateJawaban(context.Background(), 1, 10, dto.CreateJawabanRequest{JawabanTeks: strPtr("isi")}); err != nil {
		t.Fatalf("CreateJawaban: %v", err)
	}

	_, err := svc.UpdateJawaban(context.Background(), 1, 10, dto.UpdateJawabanRequest{JawabanTeks: strPtr("   ")})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want ErrValidationFailed", err)
	}
}

func TestDeleteJawabanUnknownID(t *testing.T) {
	_, svc := newJawabanFixture()

	if err := svc.DeleteJawaban(context.Background(), 42); !errors.Is(err, apperrors.ErrJawabanNotFound) {
		t.Errorf("got %v, want ErrJawabanNotFound", err)
	}
}
