// Package catalog valida la colocación de piezas en el árbol de categorías.
package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

// MaxDepth profundidad máxima del árbol (categoría → subcategoría → género).
const MaxDepth = 3

// Validator verifica que una ruta de categorías sea una cadena padre-hijo
// íntegra y que termine en una categoría que admita piezas. Es de solo
// lectura: nunca muta el árbol.
type Validator struct {
	categories repository.CategoryRepository
}

// NewValidator construye el validador.
func NewValidator(categories repository.CategoryRepository) *Validator {
	return &Validator{categories: categories}
}

// ValidatePath valida la ruta ordenada raíz→hoja:
//   - vacía → ErrEmptyPath; más de MaxDepth niveles → ErrInvalidInput
//   - cada ID debe existir → ErrCategoryNotFound
//   - cada nivel debe ser hija directa del anterior → ErrBrokenHierarchy
//   - la categoría final debe ser hoja (is_leaf) o no tener hijas → ErrNotPlaceable
//
// Archivar en un nodo intermedio duplicaría conteos contra sus descendientes;
// por eso la pieza solo puede aterrizar en una hoja real del árbol.
func (v *Validator) ValidatePath(ctx context.Context, path []string) error {
	if len(path) == 0 {
		return domain.ErrEmptyPath
	}
	if len(path) > MaxDepth {
		return fmt.Errorf("%w: la ruta admite máximo %d niveles", domain.ErrInvalidInput, MaxDepth)
	}

	for i, id := range path {
		cat, err := v.categories.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("consultar categoría %s: %w", id, err)
		}
		if cat == nil {
			return fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, id)
		}
		if i > 0 && cat.ParentID != path[i-1] {
			return fmt.Errorf("%w: %s no es hija de %s", domain.ErrBrokenHierarchy, id, path[i-1])
		}
		if i == len(path)-1 && !cat.IsLeaf {
			// Regla permisiva: sin marca de hoja también vale si no tiene hijas.
			hasChildren, err := v.categories.HasChildren(ctx, id)
			if err != nil {
				return fmt.Errorf("consultar hijas de %s: %w", id, err)
			}
			if hasChildren {
				return fmt.Errorf("%w: %s", domain.ErrNotPlaceable, id)
			}
		}
	}
	return nil
}
