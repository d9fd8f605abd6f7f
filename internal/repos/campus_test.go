package repos

import (
    "context"
    "testing"

    "github.com/campuslink-org/campuslink-backend/internal/types"
)

func TestCampusRepo_GetAll_OrderedByName(t *testing.T) {
    db := newTestDB(t)
    repo := NewCampusRepo(db, newTestLogger())

    for _, name := range []string{"Westside", "Downtown", "Airport", "Midtown"} {
        mustCreateCampus(t, repo, name)
    }

    campuses, err := repo.GetAll(context.Background(), nil)
    if err != nil {
        t.Fatalf("GetAll failed: %v", err)
    }
    if len(campuses) != 4 {
        t.Fatalf("expected 4 campuses, got %d", len(campuses))
    }
    want := []string{"Airport", "Downtown", "Midtown", "Westside"}
    for i, campus := range campuses {
        if campus.Name != want[i] {
            t.Errorf("position %d: expected %s, got %s", i, want[i], campus.Name)
        }
    }
}

func TestCampusRepo_GetByID_Absent(t *testing.T) {
    db := newTestDB(t)
    repo := NewCampusRepo(db, newTestLogger())

    campus, err := repo.GetByID(context.Background(), nil, 42)
    if err != nil {
        t.Fatalf("GetByID failed: %v", err)
    }
    if campus != nil {
        t.Errorf("expected nil for absent campus, got %+v", campus)
    }
}

func TestCampusRepo_Update_PartialFields(t *testing.T) {
    db := newTestDB(t)
    repo := NewCampusRepo(db, newTestLogger())
    ctx := context.Background()

    created, err := repo.Create(ctx, nil, &types.Campus{
        Name:    "North Campus",
        Address: "1 College Way",
    })
    if err != nil {
        t.Fatalf("Create failed: %v", err)
    }

    updated, err := repo.Update(ctx, nil, created.ID, types.CampusUpdate{
        Name: strPtr("North Campus Annex"),
    })
    if err != nil {
        t.Fatalf("Update failed: %v", err)
    }
    if updated == nil {
        t.Fatal("expected updated campus, got nil")
    }
    if updated.Name != "North Campus Annex" {
        t.Errorf("expected updated name, got %s", updated.Name)
    }
    // Fields absent from the payload keep their prior values.
    if updated.Address != "1 College Way" {
        t.Errorf("expected address untouched, got %s", updated.Address)
    }
}

func TestCampusRepo_Update_NoMatchingRow(t *testing.T) {
    db := newTestDB(t)
    repo := NewCampusRepo(db, newTestLogger())

    campus, err := repo.Update(context.Background(), nil, 1234, types.CampusUpdate{
        Name: strPtr("Ghost"),
    })
    if err != nil {
        t.Fatalf("Update failed: %v", err)
    }
    if campus != nil {
        t.Errorf("expected nil for absent campus, got %+v", campus)
    }
}

func TestCampusRepo_Update_EmptyPayload(t *testing.T) {
    db := newTestDB(t)
    repo := NewCampusRepo(db, newTestLogger())
    ctx := context.Background()

    created := mustCreateCampus(t, repo, "East Campus")

    unchanged, err := repo.Update(ctx, nil, created.ID, types.CampusUpdate{})
    if err != nil {
        t.Fatalf("Update failed: %v", err)
    }
    if unchanged == nil {
        t.Fatal("expected campus back for empty payload, got nil")
    }
    if unchanged.Name != "East Campus" {
        t.Errorf("expected name unchanged, got %s", unchanged.Name)
    }
}
