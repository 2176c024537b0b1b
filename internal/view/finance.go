package view

import "github.com/CristianHourcade/Piria-sub000/internal/model"

// Account is the ledger account view model
type Account struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
}

// Expense is the expense view model
type Expense struct {
	ID          uint    `json:"id"`
	AccountID   uint    `json:"accountId"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

// Income is the income view model
type Income struct {
	ID          uint    `json:"id"`
	AccountID   uint    `json:"accountId"`
	ProjectID   uint    `json:"projectId"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

// AccountToView maps an account row to the view model
func AccountToView(m model.Account) Account {
	return Account{ID: m.ID, Name: m.Name, Type: m.Type, Currency: m.Currency}
}

// AccountFromView maps the view model back to a storage row
func AccountFromView(v Account) model.Account {
	return model.Account{ID: v.ID, Name: v.Name, Type: v.Type, Currency: v.Currency}
}

// ExpenseToView maps an expense row to the view model
func ExpenseToView(m model.Expense) Expense {
	return Expense{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        dateToView(m.Date),
	}
}

// ExpenseFromView maps the view model back to a storage row
func ExpenseFromView(v Expense) model.Expense {
	return model.Expense{
		ID:          v.ID,
		AccountID:   v.AccountID,
		Category:    v.Category,
		Description: v.Description,
		Amount:      v.Amount,
		Date:        dateFromView(v.Date),
	}
}

// IncomeToView maps an income row to the view model
func IncomeToView(m model.Income) Income {
	return Income{
		ID:          m.ID,
		AccountID:   m.AccountID,
		ProjectID:   idToView(m.ProjectID),
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        dateToView(m.Date),
	}
}

// IncomeFromView maps the view model back to a storage row
func IncomeFromView(v Income) model.Income {
	return model.Income{
		ID:          v.ID,
		AccountID:   v.AccountID,
		ProjectID:   idFromView(v.ProjectID),
		Category:    v.Category,
		Description: v.Description,
		Amount:      v.Amount,
		Date:        dateFromView(v.Date),
	}
}
