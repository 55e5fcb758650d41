package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DimitriNjila/shiftcraft-api/internal/models"
)

// EmployeeFilter narrows employee listings. Nil fields are not applied.
type EmployeeFilter struct {
	RestaurantID *string
	IsActive     *bool
}

// EmployeeUpdate carries a partial update. Nil fields leave the stored column
// untouched; the merge happens in a single UPDATE statement.
type EmployeeUpdate struct {
	Name     *string
	Role     *string
	IsActive *bool
	Email    *string
}

// EmployeeRepository defines the interface for employee database operations.
type EmployeeRepository interface {
	Create(executor SQLExecutor, employee *models.Employee) (*models.Employee, error)
	GetByID(id int64) (*models.Employee, error)
	List(filter EmployeeFilter) ([]models.Employee, error)
	Update(executor SQLExecutor, id int64, update EmployeeUpdate) (*models.Employee, error)
	Delete(executor SQLExecutor, id int64) error
	Deactivate(executor SQLExecutor, id int64) (*models.Employee, error)
}

type employeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new instance of EmployeeRepository.
func NewEmployeeRepository(db *sql.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, name, role, restaurant_id, is_active, email, created_at, deleted_at`

func scanEmployeeRow(row scanner) (*models.Employee, error) {
	var employee models.Employee
	var email sql.NullString
	var deletedAt sql.NullTime

	err := row.Scan(
		&employee.ID, &employee.Name, &employee.Role, &employee.RestaurantID,
		&employee.IsActive, &email, &employee.CreatedAt, &deletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning employee: %v", ErrDatabaseError, err)
	}

	if email.Valid {
		employee.Email = &email.String
	}
	if deletedAt.Valid {
		employee.DeletedAt = &deletedAt.Time
	}
	return &employee, nil
}

func (r *employeeRepository) Create(executor SQLExecutor, employee *models.Employee) (*models.Employee, error) {
	query := `INSERT INTO employees (name, role, restaurant_id, is_active, email, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`

	employee.CreatedAt = time.Now()

	var email sql.NullString
	if employee.Email != nil {
		email = sql.NullString{String: *employee.Email, Valid: true}
	}

	err := executor.QueryRow(query,
		employee.Name, employee.Role, employee.RestaurantID,
		employee.IsActive, email, employee.CreatedAt,
	).Scan(&employee.ID, &employee.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: creating employee: %v", ErrDatabaseError, err)
	}
	return employee, nil
}

func (r *employeeRepository) GetByID(id int64) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployeeRow(r.db.QueryRow(query, id))
}

func (r *employeeRepository) List(filter EmployeeFilter) ([]models.Employee, error) {
	employees := []models.Employee{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + employeeColumns + ` FROM employees`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.RestaurantID != nil {
		conditions = append(conditions, fmt.Sprintf("restaurant_id = $%d", argCount))
		args = append(args, *filter.RestaurantID)
		argCount++
	}
	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argCount))
		args = append(args, *filter.IsActive)
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY name ASC")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying employees: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		employee, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *employee)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating employee rows: %v", ErrDatabaseError, err)
	}
	return employees, nil
}

// Update merges the supplied fields into the existing record in one conditional
// statement. Soft-deleted records are treated as not found.
func (r *employeeRepository) Update(executor SQLExecutor, id int64, update EmployeeUpdate) (*models.Employee, error) {
	query := `UPDATE employees SET
	            name      = COALESCE($1, name),
	            role      = COALESCE($2, role),
	            is_active = COALESCE($3, is_active),
	            email     = COALESCE($4, email)
	          WHERE id = $5 AND deleted_at IS NULL
	          RETURNING ` + employeeColumns

	var name, role, email sql.NullString
	var isActive sql.NullBool
	if update.Name != nil {
		name = sql.NullString{String: *update.Name, Valid: true}
	}
	if update.Role != nil {
		role = sql.NullString{String: *update.Role, Valid: true}
	}
	if update.IsActive != nil {
		isActive = sql.NullBool{Bool: *update.IsActive, Valid: true}
	}
	if update.Email != nil {
		email = sql.NullString{String: *update.Email, Valid: true}
	}

	return scanEmployeeRow(executor.QueryRow(query, name, role, isActive, email, id))
}

func (r *employeeRepository) Delete(executor SQLExecutor, id int64) error {
	query := `DELETE FROM employees WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting employee ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Deactivate flips the active flag off and stamps the soft-delete marker in a
// single conditional write.
func (r *employeeRepository) Deactivate(executor SQLExecutor, id int64) (*models.Employee, error) {
	query := `UPDATE employees SET is_active = FALSE, deleted_at = $1
	          WHERE id = $2
	          RETURNING ` + employeeColumns

	return scanEmployeeRow(executor.QueryRow(query, time.Now(), id))
}
