package postgres

import (
	"database/sql"

	"autoportal-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ServiceTypeRepository
	repository.ServiceRequestRepository
	repository.DocumentRepository
	repository.PaymentRepository
	repository.MessageRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                       db,
		UserRepository:           NewUserRepository(db),
		ServiceTypeRepository:    NewServiceTypeRepository(db),
		ServiceRequestRepository: NewServiceRequestRepository(db),
		DocumentRepository:       NewDocumentRepository(db),
		PaymentRepository:        NewPaymentRepository(db),
		MessageRepository:        NewMessageRepository(db),
	}
}
