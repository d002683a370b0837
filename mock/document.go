package mock

import (
	"context"

	"github.com/mjaros/pageblocks"
)

var _ pageblocks.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of pageblocks.DocumentService.
type DocumentService struct {
	CreateDocumentFn          func(ctx context.Context, doc *pageblocks.Document) error
	FindDocumentByIDFn        func(ctx context.Context, id string) (*pageblocks.Document, error)
	FindDocumentBySourceURLFn func(ctx context.Context, sourceURL string) (*pageblocks.Document, error)
	FindDocumentsFn           func(ctx context.Context, filter pageblocks.DocumentFilter) ([]*pageblocks.Document, error)
	DeleteDocumentFn          func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *pageblocks.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*pageblocks.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocumentBySourceURL(ctx context.Context, sourceURL string) (*pageblocks.Document, error) {
	return s.FindDocumentBySourceURLFn(ctx, sourceURL)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter pageblocks.DocumentFilter) ([]*pageblocks.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

var _ pageblocks.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of pageblocks.DocumentWriter.
type DocumentWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *pageblocks.Document) error
}

func (w *DocumentWriter) CreateDocument(ctx context.Context, doc *pageblocks.Document) error {
	return w.CreateDocumentFn(ctx, doc)
}
