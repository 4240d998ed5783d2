package repository

import "context"

// TxRepos are the repositories that participate in order transactions:
// creating an order writes the order, its line items and the initial history
// entry together; transitions write the status change and its history entry
// together.
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	OrderEvents() OrderEventRepository
	AuditLogs() AuditLogRepository
}

// TransactionManager hides tx begin/commit/rollback from usecases.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
