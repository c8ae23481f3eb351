package observe

import (
	"context"
	"errors"
	"testing"

	"ecosim/internal/adapter/repo/memory"
	"ecosim/internal/app/ports"
	"ecosim/internal/domain/ecology"
)

func seedWorld(t *testing.T, reg *memory.WorldRegistry) string {
	t.Helper()
	w, err := ecology.New(ecology.Config{
		Map:    []string{"###", "#*#", "###"},
		Legend: ecology.Legend{'#': ecology.KindWall, '*': ecology.KindPlant},
		Rand:   ecology.NewRand(3),
	})
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	meta, err := reg.Create(context.Background(), ports.WorldMeta{Name: "pot"}, w)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return meta.ID
}

func TestUseCase_ReturnsSnapshotAndRendering(t *testing.T) {
	reg := memory.NewWorldRegistry()
	id := seedWorld(t, reg)

	out, err := UseCase{Worlds: reg}.Execute(context.Background(), Request{WorldID: id, Separator: "/"})
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	if out.Name != "pot" || out.Snapshot.Width != 3 || out.Snapshot.Height != 3 {
		t.Fatalf("unexpected response %+v", out)
	}
	if out.Rendered != "###/#*#/###" {
		t.Fatalf("unexpected rendering %q", out.Rendered)
	}
}

func TestUseCase_Errors(t *testing.T) {
	uc := UseCase{Worlds: memory.NewWorldRegistry()}
	if _, err := uc.Execute(context.Background(), Request{WorldID: "  "}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if _, err := uc.Snapshot(context.Background(), "missing"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
