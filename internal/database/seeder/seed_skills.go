package seeder

import (
	"context"
	"fmt"

	"crewcall/internal/database"
	"crewcall/internal/domain/skill"
)

// SkillsSeeder loads the fixed role taxonomy into the skills table so it
// can be joined and filtered against. Existing rows are left alone.
type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, cat := range skill.Taxonomy() {
		for _, role := range cat.Roles {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
				role,
				cat.Name,
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
