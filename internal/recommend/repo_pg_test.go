package recommend

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoInsertWithNilTopScore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := Recommendation{
		ID:              "rec-1",
		UserID:          "user-1",
		TerrainID:       "terrain-1",
		ImplementID:     "implement-1",
		RequiredPowerHP: 88,
		Success:         false,
		Result:          []byte(`{"success":false}`),
	}

	mock.ExpectExec("INSERT INTO recommendations").
		WithArgs(
			rec.ID,
			rec.UserID,
			rec.TerrainID,
			rec.ImplementID,
			rec.RequiredPowerHP,
			rec.Success,
			nil,
			[]byte(rec.Result),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Insert(context.Background(), rec); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByUserScansTopScore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	columns := []string{"id", "user_id", "terrain_id", "implement_id", "required_power_hp", "success", "top_score", "result", "created_at"}
	rows := sqlmock.NewRows(columns).
		AddRow("rec-1", "user-1", "terrain-1", "implement-1", 88.0, true, 91.5, []byte(`{}`), now).
		AddRow("rec-2", "user-1", "terrain-1", "implement-1", 120.0, false, nil, []byte(`{}`), now)
	mock.ExpectQuery("SELECT (.+) FROM recommendations").
		WithArgs("user-1", 10, 0).
		WillReturnRows(rows)

	recs, err := repo.ListByUser(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(recs))
	}
	if recs[0].TopScore == nil || *recs[0].TopScore != 91.5 {
		t.Fatalf("expected top score 91.5, got %v", recs[0].TopScore)
	}
	if recs[1].TopScore != nil {
		t.Fatalf("expected nil top score for failed run, got %v", *recs[1].TopScore)
	}
}
