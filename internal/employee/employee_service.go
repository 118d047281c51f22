package employee

import (
	"context"

	"paytrack/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetSalary(ctx context.Context, req GetSalaryRequest) (SalaryResponse, error)
	AddEmployee(ctx context.Context, req AddEmployeeRequest) error
	IncreaseSalary(ctx context.Context, req IncreaseSalaryRequest) (IncreaseSalaryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetSalary(ctx context.Context, req GetSalaryRequest) (SalaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("get salary requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	name, err := UncheckedEmployeeName{Name: req.Name}.Check()
	if err != nil {
		s.logger.Warn("get salary invalid name", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, err
	}

	salary, err := s.repo.GetSalary(ctx, name)
	if err != nil {
		s.logger.Error("get salary failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	return SalaryResponse{Name: name.String(), Salary: salary.Amount()}, nil
}

func (s *service) AddEmployee(ctx context.Context, req AddEmployeeRequest) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("add employee requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	data, err := UncheckedEmployeeData{Name: req.Name, Salary: req.Salary}.Check()
	if err != nil {
		s.logger.Warn("add employee invalid input", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.repo.InsertEmployee(ctx, data); err != nil {
		s.logger.Error("add employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("add employee success",
		zap.String("request_id", rid),
		zap.String("name", data.Name().String()),
	)
	return nil
}

func (s *service) IncreaseSalary(ctx context.Context, req IncreaseSalaryRequest) (IncreaseSalaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("increase salary requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.Int64("percentage", req.Percentage),
	)

	mult, err := UncheckedSalaryMultiplier{Name: req.Name, Percentage: req.Percentage}.Check()
	if err != nil {
		s.logger.Warn("increase salary invalid input", zap.String("request_id", rid), zap.Error(err))
		return IncreaseSalaryResponse{}, err
	}

	oldSalary, err := s.repo.ApplyIncrease(ctx, mult)
	if err != nil {
		s.logger.Error("increase salary failed", zap.String("request_id", rid), zap.Error(err))
		return IncreaseSalaryResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("increase salary success",
		zap.String("request_id", rid),
		zap.String("name", mult.Name().String()),
		zap.Int64("percentage", mult.Percentage()),
	)

	return IncreaseSalaryResponse{
		Name:           mult.Name().String(),
		PreviousSalary: oldSalary.Amount(),
	}, nil
}
