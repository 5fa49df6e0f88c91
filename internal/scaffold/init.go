package scaffold

import (
	"context"
	"fmt"
)

// InitTools lists the project kinds init accepts.
var InitTools = []string{"bun"}

// Init bootstraps a project of the given kind, then runs every add flow.
func (s *Scaffolder) Init(ctx context.Context, tool string) error {
	switch tool {
	case "bun":
		return s.initBun(ctx)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedTool, tool)
	}
}

func (s *Scaffolder) initBun(ctx context.Context) error {
	if err := s.runner.Run(ctx, s.dir, "bun", "init", "-y"); err != nil {
		return fmt.Errorf("initializing bun project: %w", err)
	}

	if err := s.store.Ensure(s.version); err != nil {
		return err
	}

	for _, tool := range s.Tools() {
		if err := s.Add(ctx, tool); err != nil {
			return err
		}
	}

	fmt.Fprintf(s.out, "%s Bun project initialized with ESLint, Prettier, EditorConfig and .gitattributes\n", symbolSuccess)
	return nil
}
