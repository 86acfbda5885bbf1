package custodians

import (
	"errors"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"inventory/internal/repository"
	custom_error "inventory/pkg/errors"
	"inventory/pkg/models"
)

type CustodianRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *CustodianRepository {
	return &CustodianRepository{
		repository: r,
	}
}

// FindOrCreate resolves a custodian name to its row id, creating the row
// when no trimmed case-insensitive match exists. Assets store the
// custodian by display name; this keeps the directory in step with
// whatever names operators type.
func (r *CustodianRepository) FindOrCreate(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("custodian name cannot be empty")
	}

	var id int
	found, err := r.repository.GoquDBWrapper.
		From("custodians").
		Select("id").
		Where(goqu.L("LOWER(name)").Eq(strings.ToLower(name))).
		Executor().
		ScanVal(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to look up custodian %q: %w", name, err)
	}
	if found {
		return id, nil
	}

	query := r.repository.GoquDBWrapper.
		Insert("custodians").
		Rows(goqu.Record{"name": name}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&id); err != nil {
		return 0, fmt.Errorf("failed to create custodian %q: %w", name, err)
	}

	return id, nil
}

func (r *CustodianRepository) GetCustodians() ([]models.Custodian, error) {
	var custodians []models.Custodian
	err := r.repository.GoquDBWrapper.
		From("custodians").
		Order(goqu.I("id").Desc()).
		Executor().
		ScanStructs(&custodians)
	if err != nil {
		return nil, fmt.Errorf("unable to select custodians: %w", err)
	}

	return custodians, nil
}

func (r *CustodianRepository) PersistCustodian(req models.CustodianRequest) (int, error) {
	query := r.repository.GoquDBWrapper.
		Insert("custodians").
		Rows(goqu.Record{
			"id_no":                req.IDNo,
			"name":                 req.Name,
			"position_designation": req.PositionDesignation,
			"email":                req.Email,
			"phone":                req.Phone,
			"department":           req.Department,
			"employment_status":    req.EmploymentStatus,
		}).
		Returning("id")

	var id int
	if _, err := query.Executor().ScanVal(&id); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return 0, custom_error.WrapDBError("duplicate custodian", string(pqErr.Code))
		}
		return 0, fmt.Errorf("failed to insert custodian: %w", err)
	}

	return id, nil
}

func (r *CustodianRepository) UpdateCustodian(id int, req models.CustodianRequest) (int64, error) {
	res, err := r.repository.GoquDBWrapper.
		Update("custodians").
		Set(goqu.Record{
			"id_no":                req.IDNo,
			"name":                 req.Name,
			"position_designation": req.PositionDesignation,
			"email":                req.Email,
			"phone":                req.Phone,
			"department":           req.Department,
			"employment_status":    req.EmploymentStatus,
		}).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to update custodian %d: %w", id, err)
	}

	return res.RowsAffected()
}

func (r *CustodianRepository) RemoveCustodian(id int) (int64, error) {
	res, err := r.repository.GoquDBWrapper.
		Delete("custodians").
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to delete custodian %d: %w", id, err)
	}

	return res.RowsAffected()
}

// CountCustodians backs the dashboard aggregate.
func (r *CustodianRepository) CountCustodians() (int, error) {
	var count int
	_, err := r.repository.GoquDBWrapper.
		From("custodians").
		Select(goqu.COUNT("id")).
		Executor().
		ScanVal(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count custodians: %w", err)
	}

	return count, nil
}
