// Comando seed: carga la estructura base de categorías de la boutique y marca
// las hojas. Idempotente, se puede ejecutar varias veces.
package main

import (
	"context"

	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Boutique-api/pkg/config"
	"github.com/jhoicas/Boutique-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repo := postgres.NewCategoryRepository(pool)

	if err := repo.CreateMany(ctx, categories()); err != nil {
		log.Fatal().Err(err).Msg("insertar categorías")
	}
	marked, err := repo.MarkLeaves(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("marcar hojas")
	}

	log.Info().
		Int("categorias", len(categories())).
		Int64("hojas_marcadas", marked).
		Msg("estructura de categorías cargada")
}

func cat(id, name, parentID string, level int) *entity.Category {
	return &entity.Category{ID: id, Name: name, ParentID: parentID, Level: level}
}

// categories devuelve la estructura base: categorías principales,
// subcategorías y especificaciones de género.
func categories() []*entity.Category {
	return []*entity.Category{
		// Categorías principales
		cat("cat-001", "Camisas", "", 1),
		cat("cat-002", "Calça", "", 1),
		cat("cat-003", "Sapatos", "", 1),
		cat("cat-004", "Acessórios", "", 1),
		cat("cat-005", "Saia", "", 1),
		cat("cat-006", "Vestido", "", 1),
		cat("cat-007", "Shorts", "", 1),
		cat("cat-008", "Bequine", "", 1),
		cat("cat-009", "Casacos", "", 1),

		// Subcategorías
		cat("subcat-001", "Camiseta", "cat-001", 2),
		cat("subcat-002", "Social", "cat-001", 2),
		cat("subcat-003", "Blusa", "cat-001", 2),
		cat("subcat-004", "Jeans", "cat-002", 2),
		cat("subcat-005", "Calça social", "cat-002", 2),
		cat("subcat-006", "Tennis", "cat-003", 2),
		cat("subcat-007", "Botas", "cat-003", 2),
		cat("subcat-008", "Salto alto", "cat-003", 2),
		cat("subcat-009", "Sapatilha", "cat-003", 2),
		cat("subcat-010", "Óculos", "cat-004", 2),
		cat("subcat-011", "Bolsas", "cat-004", 2),
		cat("subcat-012", "Bijuteria", "cat-004", 2),
		cat("subcat-013", "Chapéus", "cat-004", 2),
		cat("subcat-014", "Feminina", "cat-007", 2),
		cat("subcat-015", "Masculina", "cat-007", 2),
		cat("subcat-016", "Feminina", "cat-009", 2),
		cat("subcat-017", "Masculina", "cat-009", 2),

		// Especificaciones de género
		cat("subsubcat-001", "Feminina", "subcat-001", 3),
		cat("subsubcat-002", "Masculina", "subcat-001", 3),
		cat("subsubcat-003", "Feminina", "subcat-002", 3),
		cat("subsubcat-004", "Masculina", "subcat-002", 3),
		cat("subsubcat-005", "Feminina", "subcat-003", 3),
		cat("subsubcat-006", "Masculina", "subcat-003", 3),
		cat("subsubcat-007", "Feminina", "subcat-004", 3),
		cat("subsubcat-008", "Masculina", "subcat-004", 3),
		cat("subsubcat-009", "Feminina", "subcat-005", 3),
		cat("subsubcat-010", "Masculina", "subcat-005", 3),
		cat("subsubcat-011", "Feminina", "subcat-006", 3),
		cat("subsubcat-012", "Masculina", "subcat-006", 3),
		cat("subsubcat-013", "Feminina", "subcat-007", 3),
		cat("subsubcat-014", "Masculina", "subcat-007", 3),
		cat("subsubcat-015", "Feminina", "subcat-008", 3),
		cat("subsubcat-016", "Feminina", "subcat-009", 3),
		cat("subsubcat-017", "Feminina", "subcat-010", 3),
		cat("subsubcat-018", "Masculina", "subcat-010", 3),
		cat("subsubcat-019", "Feminina", "subcat-011", 3),
		cat("subsubcat-020", "Masculina", "subcat-011", 3),
		cat("subsubcat-021", "Feminina", "subcat-012", 3),
		cat("subsubcat-022", "Masculina", "subcat-012", 3),
		cat("subsubcat-023", "Feminina", "subcat-013", 3),
		cat("subsubcat-024", "Masculina", "subcat-013", 3),
		cat("subsubcat-025", "Feminina", "cat-005", 2),
		cat("subsubcat-026", "Feminina", "cat-006", 2),
		cat("subsubcat-027", "Feminina", "subcat-014", 3),
		cat("subsubcat-028", "Masculina", "subcat-014", 3),
		cat("subsubcat-029", "Feminina", "subcat-015", 3),
		cat("subsubcat-030", "Masculina", "subcat-015", 3),
		cat("subsubcat-031", "Feminina", "cat-008", 2),
		cat("subsubcat-032", "Feminina", "subcat-016", 3),
		cat("subsubcat-033", "Masculina", "subcat-016", 3),
		cat("subsubcat-034", "Feminina", "subcat-017", 3),
		cat("subsubcat-035", "Masculina", "subcat-017", 3),
	}
}
