package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cquiroga/briefing-wizard/database"
	"github.com/cquiroga/briefing-wizard/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func samplePayload(name string) model.SubmissionPayload {
	return model.SubmissionPayload{
		Type:        "LANDING",
		ClientName:  name,
		ClientEmail: "ana@test.cl",
		ContactData: map[string]any{"businessName": "Panadería San José"},
		ContentData: map[string]any{"sections": []any{"hero", "faq"}},
		DesignData:  map[string]any{"designStyle": "creativo"},
		ExtraData:   map[string]any{"deadline": "urgente"},
	}
}

func TestCreateAndFind(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, samplePayload("Ana"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Error("Create must assign an id")
	}
	if created.Status != model.StatusNuevo {
		t.Errorf("new record status = %q, want nuevo", created.Status)
	}

	found, err := s.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.ClientName != "Ana" || found.Type != model.TypeLanding {
		t.Errorf("found = %+v", found)
	}
	if string(found.ContactData) != `{"businessName":"Panadería San José"}` {
		t.Errorf("contact bucket = %s", found.ContactData)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.FindByID(context.Background(), "no-such-id")
	if err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdate(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, samplePayload("Ana"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	status := model.StatusRevisado
	summary := "Cliente contactado"
	updated, err := s.Update(ctx, created.ID, Patch{Status: &status, Summary: &summary})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != model.StatusRevisado || updated.Summary != summary {
		t.Errorf("updated = %+v", updated)
	}
	if updated.ClientName != "Ana" {
		t.Error("Update must not touch immutable fields")
	}

	_, err = s.Update(ctx, "no-such-id", Patch{Status: &status})
	if err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestList(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for _, name := range []string{"Ana", "Beto", "Carla"} {
		if _, err := s.Create(ctx, samplePayload(name)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	other := samplePayload("Dora")
	other.Type = "ECOMMERCE"
	created, err := s.Create(ctx, other)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	status := model.StatusCompletado
	if _, err := s.Update(ctx, created.ID, Patch{Status: &status}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	items, total, err := s.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 4 || len(items) != 4 {
		t.Errorf("total = %d, len = %d, want 4/4", total, len(items))
	}

	items, total, err = s.List(ctx, Filter{Type: "ECOMMERCE"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].ClientName != "Dora" {
		t.Errorf("type filter: total = %d, items = %+v", total, items)
	}

	items, total, err = s.List(ctx, Filter{Status: "completado"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Errorf("status filter: total = %d, len = %d", total, len(items))
	}

	items, total, err = s.List(ctx, Filter{Page: 2, Limit: 3})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 4 || len(items) != 1 {
		t.Errorf("page 2: total = %d, len = %d, want 4/1", total, len(items))
	}
}

func TestListAll(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	for _, name := range []string{"Ana", "Beto"} {
		if _, err := s.Create(ctx, samplePayload(name)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	items, err := s.ListAll(ctx, Filter{})
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("len = %d, want 2", len(items))
	}
}
