package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/masrouf-app/masrouf/internal/logger"
	"github.com/masrouf-app/masrouf/internal/store"
	"github.com/masrouf-app/masrouf/internal/utils"
	"github.com/masrouf-app/masrouf/models"
)

type trackerService struct {
	records  store.RecordStore
	validate *validator.Validate
	ids      *utils.UUIDGenerator
	now      func() time.Time
	notify   func()
	log      *logger.Logger
}

// NewTrackerService creates the CRUD service backed by records. notify is
// called after every successful mutation, typically wired to SyncJob.Trigger;
// nil is allowed.
func NewTrackerService(records store.RecordStore, notify func(), log *logger.Logger) TrackerService {
	if notify == nil {
		notify = func() {}
	}

	return &trackerService{
		records:  records,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		notify:   notify,
		log:      log,
	}
}

// ListExpenses implements TrackerService.
func (s *trackerService) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	return s.records.GetExpenses(ctx)
}

// AddExpense implements TrackerService.
func (s *trackerService) AddExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	if err := s.validate.StructCtx(ctx, expense); err != nil {
		return models.Expense{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	s.stampExpense(&expense, true)

	expenses, err := s.records.GetExpenses(ctx)
	if err != nil {
		return models.Expense{}, fmt.Errorf("add expense: %w", err)
	}
	expenses = append(expenses, expense)

	if err = s.records.ReplaceExpenses(ctx, expenses); err != nil {
		return models.Expense{}, fmt.Errorf("add expense: %w", err)
	}
	s.notify()

	return expense, nil
}

// UpdateExpense implements TrackerService.
func (s *trackerService) UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	if err := s.validate.StructCtx(ctx, expense); err != nil {
		return models.Expense{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	s.stampExpense(&expense, false)

	expenses, err := s.records.GetExpenses(ctx)
	if err != nil {
		return models.Expense{}, fmt.Errorf("update expense: %w", err)
	}

	replaced := false
	for i := range expenses {
		if expenses[i].ID == expense.ID {
			expenses[i] = expense
			replaced = true
			break
		}
	}
	if !replaced {
		return models.Expense{}, fmt.Errorf("update expense %s: %w", expense.ID, ErrRecordNotFound)
	}

	if err = s.records.ReplaceExpenses(ctx, expenses); err != nil {
		return models.Expense{}, fmt.Errorf("update expense: %w", err)
	}
	s.notify()

	return expense, nil
}

// DeleteExpense implements TrackerService.
func (s *trackerService) DeleteExpense(ctx context.Context, id string) error {
	expenses, err := s.records.GetExpenses(ctx)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	kept := expenses[:0]
	for _, expense := range expenses {
		if expense.ID != id {
			kept = append(kept, expense)
		}
	}
	if len(kept) == len(expenses) {
		return fmt.Errorf("delete expense %s: %w", id, ErrRecordNotFound)
	}

	if err = s.records.ReplaceExpenses(ctx, kept); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	s.notify()

	return nil
}

// ListLoans implements TrackerService.
func (s *trackerService) ListLoans(ctx context.Context) ([]models.Loan, error) {
	return s.records.GetLoans(ctx)
}

// AddLoan implements TrackerService.
func (s *trackerService) AddLoan(ctx context.Context, loan models.Loan) (models.Loan, error) {
	if err := s.validate.StructCtx(ctx, loan); err != nil {
		return models.Loan{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	s.stampLoan(&loan, true)

	loans, err := s.records.GetLoans(ctx)
	if err != nil {
		return models.Loan{}, fmt.Errorf("add loan: %w", err)
	}
	loans = append(loans, loan)

	if err = s.records.ReplaceLoans(ctx, loans); err != nil {
		return models.Loan{}, fmt.Errorf("add loan: %w", err)
	}
	s.notify()

	return loan, nil
}

// UpdateLoan implements TrackerService.
func (s *trackerService) UpdateLoan(ctx context.Context, loan models.Loan) (models.Loan, error) {
	if err := s.validate.StructCtx(ctx, loan); err != nil {
		return models.Loan{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	s.stampLoan(&loan, false)

	loans, err := s.records.GetLoans(ctx)
	if err != nil {
		return models.Loan{}, fmt.Errorf("update loan: %w", err)
	}

	replaced := false
	for i := range loans {
		if loans[i].ID == loan.ID {
			loans[i] = loan
			replaced = true
			break
		}
	}
	if !replaced {
		return models.Loan{}, fmt.Errorf("update loan %s: %w", loan.ID, ErrRecordNotFound)
	}

	if err = s.records.ReplaceLoans(ctx, loans); err != nil {
		return models.Loan{}, fmt.Errorf("update loan: %w", err)
	}
	s.notify()

	return loan, nil
}

// DeleteLoan implements TrackerService.
func (s *trackerService) DeleteLoan(ctx context.Context, id string) error {
	loans, err := s.records.GetLoans(ctx)
	if err != nil {
		return fmt.Errorf("delete loan: %w", err)
	}

	kept := loans[:0]
	for _, loan := range loans {
		if loan.ID != id {
			kept = append(kept, loan)
		}
	}
	if len(kept) == len(loans) {
		return fmt.Errorf("delete loan %s: %w", id, ErrRecordNotFound)
	}

	if err = s.records.ReplaceLoans(ctx, kept); err != nil {
		return fmt.Errorf("delete loan: %w", err)
	}
	s.notify()

	return nil
}

// ListCategories implements TrackerService.
func (s *trackerService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.records.GetCategories(ctx)
}

// SaveCategory implements TrackerService. It inserts when the id is new or
// empty and updates in place otherwise.
func (s *trackerService) SaveCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if err := s.validate.StructCtx(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	if category.ID == "" {
		category.ID = s.ids.Generate()
	}
	for i := range category.Subcategories {
		if category.Subcategories[i].ID == "" {
			category.Subcategories[i].ID = s.ids.Generate()
		}
		category.Subcategories[i].CategoryID = category.ID
	}
	category.Timestamp = s.now().UTC()
	category.SyncStatus = models.SyncStatusPending

	categories, err := s.records.GetCategories(ctx)
	if err != nil {
		return models.Category{}, fmt.Errorf("save category: %w", err)
	}

	replaced := false
	for i := range categories {
		if categories[i].ID == category.ID {
			categories[i] = category
			replaced = true
			break
		}
	}
	if !replaced {
		categories = append(categories, category)
	}

	if err = s.records.ReplaceCategories(ctx, categories); err != nil {
		return models.Category{}, fmt.Errorf("save category: %w", err)
	}
	s.notify()

	return category, nil
}

// DeleteCategory implements TrackerService.
func (s *trackerService) DeleteCategory(ctx context.Context, id string) error {
	categories, err := s.records.GetCategories(ctx)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	kept := categories[:0]
	for _, category := range categories {
		if category.ID != id {
			kept = append(kept, category)
		}
	}
	if len(kept) == len(categories) {
		return fmt.Errorf("delete category %s: %w", id, ErrRecordNotFound)
	}

	if err = s.records.ReplaceCategories(ctx, kept); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	s.notify()

	return nil
}

// EnsureDefaultCategories implements TrackerService.
func (s *trackerService) EnsureDefaultCategories(ctx context.Context) error {
	categories, err := s.records.GetCategories(ctx)
	if err != nil {
		return fmt.Errorf("ensure default categories: %w", err)
	}
	if len(categories) > 0 {
		return nil
	}

	defaults := defaultCategories(s.now().UTC())
	if err = s.records.ReplaceCategories(ctx, defaults); err != nil {
		return fmt.Errorf("ensure default categories: %w", err)
	}
	s.log.Info().Int("count", len(defaults)).Msg("seeded default categories")
	s.notify()

	return nil
}

func (s *trackerService) stampExpense(expense *models.Expense, isNew bool) {
	if isNew && expense.ID == "" {
		expense.ID = s.ids.Generate()
	}
	expense.Currency = expense.Currency.OrDefault()
	expense.Timestamp = s.now().UTC()
	expense.SyncStatus = models.SyncStatusPending
}

func (s *trackerService) stampLoan(loan *models.Loan, isNew bool) {
	if isNew && loan.ID == "" {
		loan.ID = s.ids.Generate()
	}
	loan.Currency = loan.Currency.OrDefault()
	if loan.Status == models.LoanStatusFulfilled && loan.DateFulfilled == "" {
		loan.DateFulfilled = s.now().UTC().Format(time.DateOnly)
	}
	loan.Timestamp = s.now().UTC()
	loan.SyncStatus = models.SyncStatusPending
}

// defaultCategories is the starter set seeded into an empty store.
func defaultCategories(now time.Time) []models.Category {
	subNames := []string{"Transport", "Food", "Entertainment", "Healthcare", "Shopping", "Utilities", "Education", "Other"}
	subs := make([]models.Subcategory, 0, len(subNames))
	for _, name := range subNames {
		subs = append(subs, models.Subcategory{
			ID:         "personal-" + sanitizeID(name),
			Name:       name,
			CategoryID: "personal",
		})
	}

	return []models.Category{
		{
			ID:            "personal",
			Name:          "Personal",
			Color:         "#667EEA",
			Subcategories: subs,
			Timestamp:     now,
			SyncStatus:    models.SyncStatusPending,
		},
		{
			ID:         "household",
			Name:       "Household",
			Color:      "#45B7D1",
			Timestamp:  now,
			SyncStatus: models.SyncStatusPending,
		},
	}
}

func sanitizeID(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ':
			out = append(out, '-')
		}
	}

	return string(out)
}
