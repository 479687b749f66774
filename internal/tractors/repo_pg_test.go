package tractors

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"agromech-backend/internal/recommend/engine"
)

func tractorColumns() []string {
	return []string{"id", "owner_id", "name", "brand", "model", "engine_power_hp", "weight_kg", "traction_type", "status", "created_at", "updated_at"}
}

func TestPGRepoCreateBindsAllColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	tractor := Tractor{
		ID:            "tractor-1",
		OwnerID:       "user-1",
		Name:          "John Deere 6110",
		Brand:         "John Deere",
		EnginePowerHP: 110,
		WeightKG:      4300,
		TractionType:  engine.TractionFourWheel,
		Status:        engine.StatusAvailable,
	}

	mock.ExpectExec("INSERT INTO tractors").
		WithArgs(
			tractor.ID,
			tractor.OwnerID,
			tractor.Name,
			tractor.Brand,
			nil, // model
			tractor.EnginePowerHP,
			tractor.WeightKG,
			string(tractor.TractionType),
			string(tractor.Status),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), tractor); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNormalizesStoredTags(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows(tractorColumns()).
		AddRow("tractor-1", "user-1", "Belarus 820", nil, nil, 81.0, 3800.0, "4x4", "disponible", now, now)
	mock.ExpectQuery("SELECT (.+) FROM tractors").
		WithArgs("tractor-1", "user-1").
		WillReturnRows(rows)

	tractor, err := repo.GetByID(context.Background(), "user-1", "tractor-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if tractor.TractionType != engine.TractionFourWheel {
		t.Fatalf("expected normalized traction, got %q", tractor.TractionType)
	}
	if tractor.Status != engine.StatusAvailable {
		t.Fatalf("expected normalized status, got %q", tractor.Status)
	}
	if tractor.Brand != "" {
		t.Fatalf("expected empty brand for NULL column, got %q", tractor.Brand)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM tractors").
		WithArgs("missing", "user-1").
		WillReturnRows(sqlmock.NewRows(tractorColumns()))

	if _, err := repo.GetByID(context.Background(), "user-1", "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListAvailableFiltersStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	rows := sqlmock.NewRows(tractorColumns()).
		AddRow("t1", "user-1", "A", nil, nil, 90.0, 4000.0, "four_wheel_drive", "available", now, now).
		AddRow("t2", "user-1", "B", nil, nil, 120.0, 5200.0, "tracked", "in_use", now, now)
	mock.ExpectQuery("SELECT (.+) FROM tractors WHERE owner_id = \\$1 AND status IN").
		WithArgs("user-1").
		WillReturnRows(rows)

	out, err := repo.ListAvailable(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 tractors, got %d", len(out))
	}
}

func TestPGRepoUpdateMissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("UPDATE tractors SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), Tractor{ID: "missing", OwnerID: "user-1", Name: "X", TractionType: engine.TractionTwoWheel, Status: engine.StatusAvailable})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDeleteScopedToOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("DELETE FROM tractors WHERE id = \\$1 AND owner_id = \\$2").
		WithArgs("t1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "user-1", "t1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
