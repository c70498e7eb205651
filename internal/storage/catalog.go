// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/supply-service/internal/types"
)

var supplierColumns = []string{
	"id", "owner_id", "order_type", "name", "email", "phone", "address",
	"website", "currency", "categories", "comment", "created_at",
}

var ingredientColumns = []string{
	"id", "owner_id", "supplier_id", "name", "description", "category", "unit",
	"price_per_unit", "currency", "availability", "product_code", "notes",
	"created_at", "updated_at",
}

var recipeColumns = []string{
	"id", "owner_id", "name", "description", "category", "difficulty",
	"servings", "ingredients", "instructions", "tags", "status",
	"created_at", "updated_at",
}

func scanSupplier(row sq.RowScanner) (*types.Supplier, error) {
	var sp types.Supplier
	var categories []byte

	err := row.Scan(
		&sp.ID, &sp.OwnerID, &sp.OrderType, &sp.Name, &sp.Email, &sp.Phone,
		&sp.Address, &sp.Website, &sp.Currency, &categories, &sp.Comment,
		&sp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalJSON(categories, &sp.Categories); err != nil {
		return nil, err
	}

	return &sp, nil
}

func scanIngredient(row sq.RowScanner) (*types.Ingredient, error) {
	var ing types.Ingredient

	err := row.Scan(
		&ing.ID, &ing.OwnerID, &ing.SupplierID, &ing.Name, &ing.Description,
		&ing.Category, &ing.Unit, &ing.PricePerUnit, &ing.Currency,
		&ing.Availability, &ing.ProductCode, &ing.Notes, &ing.CreatedAt,
		&ing.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &ing, nil
}

func scanRecipe(row sq.RowScanner) (*types.Recipe, error) {
	var r types.Recipe
	var ingredients, instructions, tags []byte

	err := row.Scan(
		&r.ID, &r.OwnerID, &r.Name, &r.Description, &r.Category, &r.Difficulty,
		&r.Servings, &ingredients, &instructions, &tags, &r.Status,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalJSON(ingredients, &r.Ingredients); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(instructions, &r.Instructions); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(tags, &r.Tags); err != nil {
		return nil, err
	}

	return &r, nil
}

func (s *Storage) CreateSupplier(ctx context.Context, sp *types.Supplier) (*types.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSupplier")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate supplier ID: %w", err)
	}

	categories, err := marshalJSON(sp.Categories)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("suppliers").
		Columns(
			"id", "owner_id", "order_type", "name", "email", "phone",
			"address", "website", "currency", "categories", "comment",
		).
		Values(
			id.String(), sp.OwnerID, sp.OrderType, sp.Name, sp.Email, sp.Phone,
			sp.Address, sp.Website, sp.Currency, categories, sp.Comment,
		).
		Suffix("RETURNING " + joinColumns(supplierColumns)).
		QueryRowContext(ctx)

	created, err := scanSupplier(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert supplier: %w", err)
	}

	return created, nil
}

func (s *Storage) GetSupplier(ctx context.Context, ownerID, id string) (*types.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSupplier")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(supplierColumns...).
		From("suppliers").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		QueryRowContext(ctx)

	sp, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	return sp, nil
}

func (s *Storage) ListSuppliers(ctx context.Context, ownerID string) ([]*types.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSuppliers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(supplierColumns...).
		From("suppliers").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("name ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*types.Supplier
	for rows.Next() {
		sp, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, sp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return suppliers, nil
}

func (s *Storage) UpdateSupplier(ctx context.Context, sp *types.Supplier) (*types.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateSupplier")
	defer span.End()

	categories, err := marshalJSON(sp.Categories)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Update("suppliers").
		SetMap(map[string]interface{}{
			"order_type": sp.OrderType,
			"name":       sp.Name,
			"email":      sp.Email,
			"phone":      sp.Phone,
			"address":    sp.Address,
			"website":    sp.Website,
			"currency":   sp.Currency,
			"categories": categories,
			"comment":    sp.Comment,
		}).
		Where(sq.Eq{"id": sp.ID, "owner_id": sp.OwnerID}).
		Suffix("RETURNING " + joinColumns(supplierColumns)).
		QueryRowContext(ctx)

	updated, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	return updated, nil
}

func (s *Storage) DeleteSupplier(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteSupplier")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("suppliers").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) CreateIngredient(ctx context.Context, ing *types.Ingredient) (*types.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateIngredient")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ingredient ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("ingredients").
		Columns(
			"id", "owner_id", "supplier_id", "name", "description", "category",
			"unit", "price_per_unit", "currency", "availability",
			"product_code", "notes",
		).
		Values(
			id.String(), ing.OwnerID, ing.SupplierID, ing.Name,
			ing.Description, ing.Category, ing.Unit, ing.PricePerUnit,
			ing.Currency, ing.Availability, ing.ProductCode, ing.Notes,
		).
		Suffix("RETURNING " + joinColumns(ingredientColumns)).
		QueryRowContext(ctx)

	created, err := scanIngredient(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert ingredient: %w", err)
	}

	return created, nil
}

func (s *Storage) GetIngredient(ctx context.Context, ownerID, id string) (*types.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetIngredient")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(ingredientColumns...).
		From("ingredients").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		QueryRowContext(ctx)

	ing, err := scanIngredient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}

	return ing, nil
}

func (s *Storage) listIngredients(ctx context.Context, pred sq.Eq, orderBy ...string) ([]*types.Ingredient, error) {
	rows, err := s.db.Statement(ctx).
		Select(ingredientColumns...).
		From("ingredients").
		Where(pred).
		OrderBy(orderBy...).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []*types.Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ingredients, nil
}

func (s *Storage) ListIngredients(ctx context.Context, ownerID string) ([]*types.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListIngredients")
	defer span.End()

	return s.listIngredients(ctx, sq.Eq{"owner_id": ownerID}, "category ASC", "name ASC")
}

func (s *Storage) ListIngredientsBySupplier(ctx context.Context, ownerID, supplierID string) ([]*types.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListIngredientsBySupplier")
	defer span.End()

	return s.listIngredients(ctx, sq.Eq{"owner_id": ownerID, "supplier_id": supplierID}, "name ASC")
}

func (s *Storage) ListIngredientsByCategory(ctx context.Context, ownerID, category string) ([]*types.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListIngredientsByCategory")
	defer span.End()

	return s.listIngredients(ctx, sq.Eq{"owner_id": ownerID, "category": category}, "name ASC")
}

func (s *Storage) distinctIngredientField(ctx context.Context, ownerID, field string) ([]string, error) {
	rows, err := s.db.Statement(ctx).
		Select("DISTINCT " + field).
		From("ingredients").
		Where(sq.And{
			sq.Eq{"owner_id": ownerID},
			sq.NotEq{field: ""},
		}).
		OrderBy(field + " ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct %s: %w", field, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", field, err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return values, nil
}

func (s *Storage) DistinctIngredientCategories(ctx context.Context, ownerID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DistinctIngredientCategories")
	defer span.End()

	return s.distinctIngredientField(ctx, ownerID, "category")
}

func (s *Storage) DistinctIngredientUnits(ctx context.Context, ownerID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DistinctIngredientUnits")
	defer span.End()

	return s.distinctIngredientField(ctx, ownerID, "unit")
}

func (s *Storage) UpdateIngredient(ctx context.Context, ing *types.Ingredient) (*types.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateIngredient")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("ingredients").
		SetMap(map[string]interface{}{
			"supplier_id":    ing.SupplierID,
			"name":           ing.Name,
			"description":    ing.Description,
			"category":       ing.Category,
			"unit":           ing.Unit,
			"price_per_unit": ing.PricePerUnit,
			"currency":       ing.Currency,
			"availability":   ing.Availability,
			"product_code":   ing.ProductCode,
			"notes":          ing.Notes,
			"updated_at":     sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": ing.ID, "owner_id": ing.OwnerID}).
		Suffix("RETURNING " + joinColumns(ingredientColumns)).
		QueryRowContext(ctx)

	updated, err := scanIngredient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update ingredient: %w", err)
	}

	return updated, nil
}

func (s *Storage) DeleteIngredient(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteIngredient")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("ingredients").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) CreateRecipe(ctx context.Context, r *types.Recipe) (*types.Recipe, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRecipe")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate recipe ID: %w", err)
	}

	ingredients, err := marshalJSON(r.Ingredients)
	if err != nil {
		return nil, err
	}
	instructions, err := marshalJSON(r.Instructions)
	if err != nil {
		return nil, err
	}
	tags, err := marshalJSON(r.Tags)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("recipes").
		Columns(
			"id", "owner_id", "name", "description", "category", "difficulty",
			"servings", "ingredients", "instructions", "tags", "status",
		).
		Values(
			id.String(), r.OwnerID, r.Name, r.Description, r.Category,
			r.Difficulty, r.Servings, ingredients, instructions, tags, r.Status,
		).
		Suffix("RETURNING " + joinColumns(recipeColumns)).
		QueryRowContext(ctx)

	created, err := scanRecipe(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert recipe: %w", err)
	}

	return created, nil
}

func (s *Storage) GetRecipe(ctx context.Context, ownerID, id string) (*types.Recipe, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRecipe")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(recipeColumns...).
		From("recipes").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		QueryRowContext(ctx)

	r, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	return r, nil
}

func (s *Storage) listRecipes(ctx context.Context, pred interface{}) ([]*types.Recipe, error) {
	rows, err := s.db.Statement(ctx).
		Select(prefixColumns("r.", recipeColumns)...).
		From("recipes r").
		Where(pred).
		OrderBy("r.created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*types.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return recipes, nil
}

func (s *Storage) ListRecipes(ctx context.Context, ownerID string) ([]*types.Recipe, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRecipes")
	defer span.End()

	return s.listRecipes(ctx, sq.Eq{"r.owner_id": ownerID})
}

func (s *Storage) DistinctRecipeCategories(ctx context.Context, ownerID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DistinctRecipeCategories")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("DISTINCT category").
		From("recipes").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("category ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return categories, nil
}

func (s *Storage) UpdateRecipe(ctx context.Context, r *types.Recipe) (*types.Recipe, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateRecipe")
	defer span.End()

	ingredients, err := marshalJSON(r.Ingredients)
	if err != nil {
		return nil, err
	}
	instructions, err := marshalJSON(r.Instructions)
	if err != nil {
		return nil, err
	}
	tags, err := marshalJSON(r.Tags)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Update("recipes").
		SetMap(map[string]interface{}{
			"name":         r.Name,
			"description":  r.Description,
			"category":     r.Category,
			"difficulty":   r.Difficulty,
			"servings":     r.Servings,
			"ingredients":  ingredients,
			"instructions": instructions,
			"tags":         tags,
			"status":       r.Status,
			"updated_at":   sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": r.ID, "owner_id": r.OwnerID}).
		Suffix("RETURNING " + joinColumns(recipeColumns)).
		QueryRowContext(ctx)

	updated, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	return updated, nil
}

func (s *Storage) DeleteRecipe(ctx context.Context, ownerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteRecipe")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("recipes").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// Membership-scoped catalog reads, used by the team-member surface. The
// membership is resolved through the owning user so team-members see the
// catalog of their tenant without owning any rows themselves.

func (s *Storage) ListRecipesByMembership(ctx context.Context, membershipID string) ([]*types.Recipe, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRecipesByMembership")
	defer span.End()

	return s.listRecipes(ctx, sq.Expr(
		"r.owner_id IN (SELECT id FROM users WHERE membership_id = ?)", membershipID,
	))
}

func (s *Storage) GetRecipeInMembership(ctx context.Context, membershipID, id string) (*types.Recipe, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRecipeInMembership")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(recipeColumns...).
		From("recipes").
		Where(sq.And{
			sq.Eq{"id": id},
			sq.Expr("owner_id IN (SELECT id FROM users WHERE membership_id = ?)", membershipID),
		}).
		QueryRowContext(ctx)

	r, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	return r, nil
}

func (s *Storage) ListIngredientsByMembership(ctx context.Context, membershipID string) ([]*types.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListIngredientsByMembership")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(ingredientColumns...).
		From("ingredients").
		Where(sq.Expr("owner_id IN (SELECT id FROM users WHERE membership_id = ?)", membershipID)).
		OrderBy("name ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []*types.Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ingredients, nil
}

func (s *Storage) GetIngredientInMembership(ctx context.Context, membershipID, id string) (*types.Ingredient, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetIngredientInMembership")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(ingredientColumns...).
		From("ingredients").
		Where(sq.And{
			sq.Eq{"id": id},
			sq.Expr("owner_id IN (SELECT id FROM users WHERE membership_id = ?)", membershipID),
		}).
		QueryRowContext(ctx)

	ing, err := scanIngredient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}

	return ing, nil
}

func (s *Storage) CountIngredientsInMembership(ctx context.Context, membershipID string, ids []string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountIngredientsInMembership")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("ingredients").
		Where(sq.And{
			sq.Eq{"id": ids},
			sq.Expr("owner_id IN (SELECT id FROM users WHERE membership_id = ?)", membershipID),
		}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count ingredients: %w", err)
	}

	return count, nil
}
