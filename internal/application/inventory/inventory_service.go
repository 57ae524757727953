package inventory

import (
	"context"

	"github.com/emprendia/backend/internal/domain/catalog"
	"github.com/emprendia/backend/internal/domain/inventory"
	"github.com/emprendia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InventoryService handles ledger queries and explicit stock additions.
// Quantity changes go through the repository's conditional updates; sale
// registration owns the decrement path and is not exposed here.
type InventoryService struct {
	entryRepo   inventory.InventoryEntryRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	entryRepo inventory.InventoryEntryRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *InventoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryService{
		entryRepo:   entryRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetEntry retrieves the inventory entry for a product
func (s *InventoryService) GetEntry(ctx context.Context, tenantID, productID uuid.UUID) (*EntryResponse, error) {
	entry, err := s.entryRepo.FindByProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	resp := ToEntryResponse(entry)
	return &resp, nil
}

// List retrieves a tenant's inventory entries, paginated
func (s *InventoryService) List(ctx context.Context, tenantID uuid.UUID, filter EntryListFilter) ([]EntryResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "updated_at",
		OrderDir: "desc",
	}

	entries, err := s.entryRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.entryRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, ToEntryResponse(&entries[i]))
	}
	return responses, total, nil
}

// Restock adds quantity to an existing entry, revaluing at the product's
// current manufacturing cost.
func (s *InventoryService) Restock(ctx context.Context, tenantID, productID uuid.UUID, req RestockRequest) (*EntryResponse, error) {
	if req.Quantity < 1 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Restock quantity must be at least 1")
	}

	product, err := s.productRepo.FindByIDForTenant(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	matched, err := s.entryRepo.IncrementQuantity(ctx, tenantID, productID, req.Quantity, product.ManufacturingCost)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, shared.NewDomainError("NOT_FOUND", "No inventory entry exists for product "+product.Name)
	}

	s.logger.Info("stock added",
		zap.String("tenant_id", tenantID.String()),
		zap.String("product_id", productID.String()),
		zap.Int64("quantity", req.Quantity))

	entry, err := s.entryRepo.FindByProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	resp := ToEntryResponse(entry)
	return &resp, nil
}

// CreateEntry creates an inventory entry for a product that does not have
// one yet. A duplicate (tenant, product) pair yields ALREADY_EXISTS.
func (s *InventoryService) CreateEntry(ctx context.Context, tenantID uuid.UUID, req CreateEntryRequest) (*EntryResponse, error) {
	product, err := s.productRepo.FindByIDForTenant(ctx, tenantID, req.ProductID)
	if err != nil {
		return nil, err
	}

	entry, err := inventory.NewInventoryEntry(tenantID, product.ID, req.Quantity, product.ManufacturingCost)
	if err != nil {
		return nil, err
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	resp := ToEntryResponse(entry)
	return &resp, nil
}
