package commands

import (
	"context"
	"errors"
	"testing"

	"planboard/internal/application"
	"planboard/internal/domain"
)

func TestPlaceCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		employee string
		site     string
		slot     string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid placement",
			employee: "Jane Doe",
			site:     "Site A",
			slot:     "foreman",
		},
		{
			name:    "empty employee",
			site:    "Site A",
			slot:    "foreman",
			wantErr: true,
			errMsg:  "employee name is required",
		},
		{
			name:     "empty site",
			employee: "Jane Doe",
			slot:     "foreman",
			wantErr:  true,
			errMsg:   "job site name is required",
		},
		{
			name:     "unknown slot",
			employee: "Jane Doe",
			site:     "Site A",
			slot:     "janitor",
			wantErr:  true,
			errMsg:   "unknown slot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &PlaceCommand{Employee: tt.employee, Site: tt.site, Slot: tt.slot}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPlaceCommand_Execute(t *testing.T) {
	store := newMemStore(t, buildBoard)

	result, err := NewPlaceCommand(store, "Jane Doe", "Site A", "foreman").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !contains(result.Message, "Jane Doe") {
		t.Errorf("message = %q", result.Message)
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1", store.saves)
	}

	dir, _ := store.Load()
	hub, _ := dir.Hub("Site A")
	if occ := hub.Occupants(domain.SlotForeman); len(occ) != 1 || occ[0] != "Jane Doe" {
		t.Errorf("foreman slot after save = %v", occ)
	}
}

func TestPlaceCommand_RejectedPlacementDoesNotSave(t *testing.T) {
	store := newMemStore(t, buildBoard)

	_, err := NewPlaceCommand(store, "Jane Doe", "Site A", "pm").Execute(context.Background())
	if !errors.Is(err, application.ErrRoleMismatch) {
		t.Fatalf("error = %v, want ErrRoleMismatch", err)
	}
	var pe *application.PlacementError
	if !errors.As(err, &pe) {
		t.Fatalf("error %T does not wrap PlacementError", err)
	}
	if store.saves != 0 {
		t.Errorf("rejected placement saved the board (%d saves)", store.saves)
	}
}

func TestUnassignCommand_Execute(t *testing.T) {
	store := newMemStore(t, func(d *domain.Directory) {
		buildBoard(d)
		d.Place("Jane Doe", "Site B", domain.SlotForeman)
	})

	if _, err := NewUnassignCommand(store, "Jane Doe").Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	dir, _ := store.Load()
	emp, _ := dir.Employee("Jane Doe")
	if emp.JobSite != domain.UnassignedSite {
		t.Errorf("site = %q, want %q", emp.JobSite, domain.UnassignedSite)
	}
	hub, _ := dir.Hub("Site B")
	if occ := hub.Occupants(domain.SlotForeman); len(occ) != 0 {
		t.Errorf("slot not cleared: %v", occ)
	}
}

func TestRenameSiteCommand_Execute(t *testing.T) {
	store := newMemStore(t, buildBoard)

	if _, err := NewRenameSiteCommand(store, "Site A", "Harbor Tower", "").Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	dir, _ := store.Load()
	if _, ok := dir.Hub("Harbor Tower"); !ok {
		t.Error("renamed site missing")
	}

	_, err := NewRenameSiteCommand(store, "Harbor Tower", "Site B", "").Execute(context.Background())
	if !errors.Is(err, application.ErrDuplicateName) {
		t.Errorf("error = %v, want ErrDuplicateName", err)
	}
}

func TestCollapseCommand_Execute(t *testing.T) {
	store := newMemStore(t, buildBoard)

	result, err := NewCollapseCommand(store, "Site A").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !result.Collapsed {
		t.Error("Collapsed = false after first toggle")
	}

	dir, _ := store.Load()
	hub, _ := dir.Hub("Site A")
	if !hub.Collapsed {
		t.Error("collapse flag not persisted")
	}
}

func TestScaleCommand(t *testing.T) {
	store := newMemStore(t, buildBoard)

	if err := (&ScaleCommand{Scale: 0}).Validate(); err == nil {
		t.Error("Validate accepted zero scale")
	}

	if _, err := NewScaleCommand(store, 0.225).Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	dir, _ := store.Load()
	if dir.Scale != 0.225 {
		t.Errorf("scale = %v, want 0.225", dir.Scale)
	}
}
