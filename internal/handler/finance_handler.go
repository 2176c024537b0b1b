package handler

import (
	"net/http"

	"github.com/CristianHourcade/Piria-sub000/internal/repository"
	"github.com/CristianHourcade/Piria-sub000/internal/view"
	"github.com/CristianHourcade/Piria-sub000/pkg/logger"
	"github.com/CristianHourcade/Piria-sub000/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// FinanceHandler serves the account, expense and income endpoints
type FinanceHandler struct {
	accounts *repository.AccountRepository
	expenses *repository.ExpenseRepository
	incomes  *repository.IncomeRepository
}

// NewFinanceHandler creates a finance handler
func NewFinanceHandler(accounts *repository.AccountRepository, expenses *repository.ExpenseRepository, incomes *repository.IncomeRepository) *FinanceHandler {
	return &FinanceHandler{accounts: accounts, expenses: expenses, incomes: incomes}
}

// ListAccounts handles retrieving all ledger accounts
func (h *FinanceHandler) ListAccounts(c echo.Context) error {
	log := logger.FromContext(c)

	accounts, err := h.accounts.FetchAll()
	if err != nil {
		log.Error("Failed to list accounts", zap.Error(err))
		return repoError(c, err, "accounts not found", "Failed to retrieve accounts")
	}
	return c.JSON(http.StatusOK, accounts)
}

// CreateAccount handles creating a ledger account
func (h *FinanceHandler) CreateAccount(c echo.Context) error {
	log := logger.FromContext(c)

	var req view.Account
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	account, err := h.accounts.Create(req)
	if err != nil {
		log.Error("Failed to create account", zap.String("name", req.Name), zap.Error(err))
		return repoError(c, err, "Account not found", "Failed to create account")
	}

	prometheus.RecordEntityOperation("account", "create")
	log.Info("Account created", zap.Uint("account_id", account.ID), zap.String("name", account.Name))
	return c.JSON(http.StatusCreated, account)
}

// UpdateAccount handles updating a ledger account
func (h *FinanceHandler) UpdateAccount(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid account ID"})
	}

	var req view.Account
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	req.ID = id

	account, err := h.accounts.Update(req)
	if err != nil {
		log.Error("Failed to update account", zap.Uint("account_id", id), zap.Error(err))
		return repoError(c, err, "Account not found", "Failed to update account")
	}

	prometheus.RecordEntityOperation("account", "update")
	return c.JSON(http.StatusOK, account)
}

// DeleteAccount handles deleting a ledger account
func (h *FinanceHandler) DeleteAccount(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid account ID"})
	}

	if err := h.accounts.Delete(id); err != nil {
		log.Error("Failed to delete account", zap.Uint("account_id", id), zap.Error(err))
		return repoError(c, err, "Account not found", "Failed to delete account")
	}

	prometheus.RecordEntityOperation("account", "delete")
	log.Info("Account deleted", zap.Uint("account_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Account deleted successfully"})
}

// ListExpenses handles retrieving expenses with optional filtering
func (h *FinanceHandler) ListExpenses(c echo.Context) error {
	log := logger.FromContext(c)

	filter := repository.LedgerFilter{
		AccountID: parseUintParam(c, "account_id"),
		Category:  c.QueryParam("category"),
	}

	expenses, err := h.expenses.FetchAll(filter)
	if err != nil {
		log.Error("Failed to list expenses", zap.Error(err))
		return repoError(c, err, "expenses not found", "Failed to retrieve expenses")
	}

	log.Info("Expenses retrieved", zap.Int("count", len(expenses)))
	return c.JSON(http.StatusOK, expenses)
}

// CreateExpense handles creating an expense row
func (h *FinanceHandler) CreateExpense(c echo.Context) error {
	log := logger.FromContext(c)

	var req view.Expense
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.AccountID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "accountId is required"})
	}

	expense, err := h.expenses.Create(req)
	if err != nil {
		log.Error("Failed to create expense", zap.Error(err))
		return repoError(c, err, "Expense not found", "Failed to create expense")
	}

	prometheus.RecordEntityOperation("expense", "create")
	log.Info("Expense created",
		zap.Uint("expense_id", expense.ID),
		zap.String("category", expense.Category),
		zap.Float64("amount", expense.Amount))
	return c.JSON(http.StatusCreated, expense)
}

// UpdateExpense handles updating an expense row
func (h *FinanceHandler) UpdateExpense(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid expense ID"})
	}

	var req view.Expense
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	req.ID = id

	expense, err := h.expenses.Update(req)
	if err != nil {
		log.Error("Failed to update expense", zap.Uint("expense_id", id), zap.Error(err))
		return repoError(c, err, "Expense not found", "Failed to update expense")
	}

	prometheus.RecordEntityOperation("expense", "update")
	return c.JSON(http.StatusOK, expense)
}

// DeleteExpense handles deleting an expense row
func (h *FinanceHandler) DeleteExpense(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid expense ID"})
	}

	if err := h.expenses.Delete(id); err != nil {
		log.Error("Failed to delete expense", zap.Uint("expense_id", id), zap.Error(err))
		return repoError(c, err, "Expense not found", "Failed to delete expense")
	}

	prometheus.RecordEntityOperation("expense", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Expense deleted successfully"})
}

// ListIncomes handles retrieving incomes with optional filtering
func (h *FinanceHandler) ListIncomes(c echo.Context) error {
	log := logger.FromContext(c)

	filter := repository.LedgerFilter{
		AccountID: parseUintParam(c, "account_id"),
		ProjectID: parseUintParam(c, "project_id"),
		Category:  c.QueryParam("category"),
	}

	incomes, err := h.incomes.FetchAll(filter)
	if err != nil {
		log.Error("Failed to list incomes", zap.Error(err))
		return repoError(c, err, "incomes not found", "Failed to retrieve incomes")
	}

	log.Info("Incomes retrieved", zap.Int("count", len(incomes)))
	return c.JSON(http.StatusOK, incomes)
}

// CreateIncome handles creating an income row
func (h *FinanceHandler) CreateIncome(c echo.Context) error {
	log := logger.FromContext(c)

	var req view.Income
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.AccountID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "accountId is required"})
	}

	income, err := h.incomes.Create(req)
	if err != nil {
		log.Error("Failed to create income", zap.Error(err))
		return repoError(c, err, "Income not found", "Failed to create income")
	}

	prometheus.RecordEntityOperation("income", "create")
	log.Info("Income created",
		zap.Uint("income_id", income.ID),
		zap.String("category", income.Category),
		zap.Float64("amount", income.Amount))
	return c.JSON(http.StatusCreated, income)
}

// UpdateIncome handles updating an income row
func (h *FinanceHandler) UpdateIncome(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid income ID"})
	}

	var req view.Income
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	req.ID = id

	income, err := h.incomes.Update(req)
	if err != nil {
		log.Error("Failed to update income", zap.Uint("income_id", id), zap.Error(err))
		return repoError(c, err, "Income not found", "Failed to update income")
	}

	prometheus.RecordEntityOperation("income", "update")
	return c.JSON(http.StatusOK, income)
}

// DeleteIncome handles deleting an income row
func (h *FinanceHandler) DeleteIncome(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid income ID"})
	}

	if err := h.incomes.Delete(id); err != nil {
		log.Error("Failed to delete income", zap.Uint("income_id", id), zap.Error(err))
		return repoError(c, err, "Income not found", "Failed to delete income")
	}

	prometheus.RecordEntityOperation("income", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Income deleted successfully"})
}
