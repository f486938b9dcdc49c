package employee_test

import (
	"context"
	"testing"
	"time"

	"go-hrpms/internal/database/dbtest"
	"go-hrpms/internal/department"
	"go-hrpms/internal/employee"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RepositorySuite struct {
	suite.Suite
	db   *gorm.DB
	repo employee.Repository
	ctx  context.Context
	eng  uint
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	s.db = dbtest.NewSeeded(s.T())
	s.repo = employee.NewRepository(s.db)
	s.ctx = context.Background()

	var dept department.Department
	s.Require().NoError(s.db.Where("name_key = ?", "engineering").First(&dept).Error)
	s.eng = dept.ID
}

func (s *RepositorySuite) create(name, email string) *employee.Employee {
	e := &employee.Employee{
		Name:         name,
		Email:        email,
		DepartmentID: s.eng,
		JobTitle:     "Software Engineer",
		Salary:       decimal.RequireFromString("85000"),
		HireDate:     datatypes.Date(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		IsActive:     true,
	}
	s.Require().NoError(s.repo.Create(s.ctx, e))
	return e
}

func (s *RepositorySuite) TestCreateAndFindRow() {
	e := s.create("Asha Rao", "asha@x.io")

	row, err := s.repo.FindRowByID(s.ctx, e.ID)

	s.Require().NoError(err)
	s.Equal("Asha Rao", row.Name)
	s.Equal("Engineering", row.DepartmentName)
	s.True(row.Salary.Equal(decimal.RequireFromString("85000")))
	s.True(row.IsActive)
}

func (s *RepositorySuite) TestFindRowByID_NotFound() {
	_, err := s.repo.FindRowByID(s.ctx, 999)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *RepositorySuite) TestCreate_DuplicateEmail() {
	s.create("Asha Rao", "asha@x.io")

	err := s.repo.Create(s.ctx, &employee.Employee{Name: "Other", Email: "asha@x.io", DepartmentID: s.eng, IsActive: true})

	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *RepositorySuite) TestSearch() {
	asha := s.create("Asha Rao", "asha@x.io")
	ben := s.create("Ben Ode", "ben_o@x.io")
	gone := s.create("Ashok Rao", "ashok@x.io")
	_, err := s.repo.Deactivate(s.ctx, gone.ID)
	s.Require().NoError(err)

	rows, err := s.repo.Search(s.ctx, "ASHA")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(asha.ID, rows[0].EmployeeID)

	// inactive employees are never matched
	rows, err = s.repo.Search(s.ctx, "rao")
	s.Require().NoError(err)
	s.Len(rows, 1)

	// wildcards are literal
	rows, err = s.repo.Search(s.ctx, "_")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(ben.ID, rows[0].EmployeeID)

	rows, err = s.repo.Search(s.ctx, "%")
	s.Require().NoError(err)
	s.Empty(rows)
}

func (s *RepositorySuite) TestListActive_OrderedByID() {
	first := s.create("Zed Young", "zed@x.io")
	second := s.create("Asha Rao", "asha@x.io")

	rows, err := s.repo.ListActive(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(first.ID, rows[0].EmployeeID)
	s.Equal(second.ID, rows[1].EmployeeID)
}

func (s *RepositorySuite) TestDeactivate_OnlyOnce() {
	e := s.create("Asha Rao", "asha@x.io")

	n, err := s.repo.Deactivate(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	n, err = s.repo.Deactivate(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *RepositorySuite) TestArchive_Duplicate() {
	e := s.create("Asha Rao", "asha@x.io")
	s.Require().NoError(s.repo.Archive(s.ctx, &employee.DeletedEmployee{EmployeeID: e.ID, Name: e.Name, Email: e.Email}))

	err := s.repo.Archive(s.ctx, &employee.DeletedEmployee{EmployeeID: e.ID, Name: e.Name, Email: e.Email})

	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *RepositorySuite) TestArchive_AssignsDeletionDate() {
	e := s.create("Asha Rao", "asha@x.io")
	s.Require().NoError(s.repo.Archive(s.ctx, &employee.DeletedEmployee{EmployeeID: e.ID, Name: e.Name, Email: e.Email}))

	rows, err := s.repo.ListDeleted(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.False(rows[0].DeletionDate.IsZero())
}

func (s *RepositorySuite) TestListDeleted_Ordering() {
	older := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	for _, d := range []employee.DeletedEmployee{
		{EmployeeID: 3, Name: "C", Email: "c@x.io", DeletionDate: older},
		{EmployeeID: 1, Name: "A", Email: "a@x.io", DeletionDate: newer},
		{EmployeeID: 2, Name: "B", Email: "b@x.io", DeletionDate: newer},
	} {
		d := d
		s.Require().NoError(s.repo.Archive(s.ctx, &d))
	}

	rows, err := s.repo.ListDeleted(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal([]uint{2, 1, 3}, []uint{rows[0].EmployeeID, rows[1].EmployeeID, rows[2].EmployeeID})
}

func (s *RepositorySuite) TestUpdate() {
	e := s.create("Asha Rao", "asha@x.io")

	n, err := s.repo.Update(s.ctx, e.ID, map[string]any{"job_title": "Staff Engineer"})
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	n, err = s.repo.Update(s.ctx, 999, map[string]any{"job_title": "Ghost"})
	s.Require().NoError(err)
	s.Zero(n)

	got, err := s.repo.FindByID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal("Staff Engineer", got.JobTitle)
	s.True(got.IsActive)
}

func (s *RepositorySuite) TestDepartmentExists() {
	ok, err := s.repo.DepartmentExists(s.ctx, s.eng)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.repo.DepartmentExists(s.ctx, 9999)
	s.Require().NoError(err)
	s.False(ok)
}
