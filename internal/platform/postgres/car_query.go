package postgres

import (
	"fmt"
	"strings"

	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
	"github.com/kevinaldroniya/crudSonarCube/internal/store"
)

// carSelect is the row projection shared by every car read. The make is joined
// so that each car comes back with its make attached.
const carSelect = `
		SELECT c.id, c.make_id, c.model, c.year, c.price, c.is_electric,
			c.features, c.engine_specs, c.previous_owner, c.warranty,
			c.maintenance_dates, c.dimensions, c.status, c.created_at, c.updated_at,
			m.id, m.name, m.is_active, m.created_at, m.updated_at, m.deleted_at
		FROM car c
		JOIN car_make m ON m.id = c.make_id`

const carCount = `
		SELECT COUNT(*)
		FROM car c
		JOIN car_make m ON m.id = c.make_id`

// sortColumns maps each sortable field to its column. Only these columns can
// ever reach an ORDER BY clause.
var sortColumns = map[domain.SortField]string{
	domain.SortByID:            "c.id",
	domain.SortByMake:          "m.name",
	domain.SortByModel:         "c.model",
	domain.SortByYear:          "c.year",
	domain.SortByPrice:         "c.price",
	domain.SortByIsElectric:    "c.is_electric",
	domain.SortByPreviousOwner: "c.previous_owner",
	domain.SortByStatus:        "c.status",
	domain.SortByCreatedAt:     "c.created_at",
	domain.SortByUpdatedAt:     "c.updated_at",
}

// buildCarPredicate renders the WHERE clause for f along with its positional
// arguments. Row and count queries both go through here so their predicates
// cannot drift apart.
func buildCarPredicate(f store.CarFilter) (string, []any) {
	var b strings.Builder
	var args []any

	b.WriteString("WHERE 1=1")

	add := func(condition string, arg any) {
		args = append(args, arg)
		b.WriteString(" AND ")
		b.WriteString(fmt.Sprintf(condition, len(args)))
	}

	if f.MakeID != nil {
		add("c.make_id = $%d", *f.MakeID)
	}
	if f.MakeName != "" {
		add("m.name LIKE $%d", containsPattern(f.MakeName))
	}
	if f.Model != "" {
		add("c.model LIKE $%d", containsPattern(f.Model))
	}
	if f.Year > 0 {
		add("c.year = $%d", f.Year)
	}
	if f.IsElectric != nil {
		add("c.is_electric = $%d", *f.IsElectric)
	}
	if f.Status != nil {
		add("c.status = $%d", string(*f.Status))
	}

	return b.String(), args
}

// buildCarSearchQuery returns the paged row query for f. f must be normalized.
func buildCarSearchQuery(f store.CarFilter) (string, []any) {
	where, args := buildCarPredicate(f)

	args = append(args, f.Size, f.Offset())
	query := fmt.Sprintf("%s\n\t\t%s\n\t\t%s\n\t\tLIMIT $%d OFFSET $%d",
		carSelect, where, orderBy(f.Sort), len(args)-1, len(args))

	return query, args
}

// buildCarCountQuery returns the total-count query for f.
func buildCarCountQuery(f store.CarFilter) (string, []any) {
	where, args := buildCarPredicate(f)
	return fmt.Sprintf("%s\n\t\t%s", carCount, where), args
}

// orderBy renders an ORDER BY clause from the allow-list, breaking ties on id
// so that paging is deterministic.
func orderBy(sort domain.CarSort) string {
	column, ok := sortColumns[sort.Field]
	if !ok {
		column = sortColumns[domain.SortByID]
	}

	direction := domain.SortAsc
	if sort.Direction == domain.SortDesc {
		direction = domain.SortDesc
	}

	if column == "c.id" {
		return fmt.Sprintf("ORDER BY c.id %s", direction)
	}
	return fmt.Sprintf("ORDER BY %s %s, c.id ASC", column, direction)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching any text containing s.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
