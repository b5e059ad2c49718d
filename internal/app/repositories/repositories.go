package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository            *UserRepository
	FakultasRepository        *FakultasRepository
	ProgramStudiRepository    *ProgramStudiRepository
	BiodataRepository         *BiodataRepository
	PertanyaanRepository      *PertanyaanRepository
	PilihanJawabanRepository  *PilihanJawabanRepository
	JawabanRepository         *JawabanRepository
	WilayahRepository         *WilayahRepository
	LokasiPekerjaanRepository *LokasiPekerjaanRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:            NewUserRepository(db),
		FakultasRepository:        NewFakultasRepository(db),
		ProgramStudiRepository:    NewProgramStudiRepository(db),
		BiodataRepository:         NewBiodataRepository(db),
		PertanyaanRepository:      NewPertanyaanRepository(db),
		PilihanJawabanRepository:  NewPilihanJawabanRepository(db),
		JawabanRepository:         NewJawabanRepository(db),
		WilayahRepository:         NewWilayahRepository(db),
		LokasiPekerjaanRepository: NewLokasiPekerjaanRepository(db),
	}
}
