package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"docqa/internal/genai"
	"docqa/internal/model"
	"docqa/internal/partition"
	"docqa/internal/repository"
	"docqa/internal/storage"
)

var (
	ErrIDRequired = errors.New("document id is required")
	ErrNotFound   = errors.New("document not found")
	ErrReaderNil  = errors.New("reader is nil")
)

// DocumentInfo is the service-level DTO for listing: the only fields
// ever exposed to clients are the id and the advisory file name.
type DocumentInfo struct {
	ID       string `json:"document_id"`
	FileName string `json:"file_name"`
}

// AskResult carries the model's answer together with the original
// question and the document's file name.
type AskResult struct {
	Query    string `json:"query"`
	Response string `json:"response"`
	Document string `json:"document"`
}

// DocumentService defines the use cases for the document lifecycle and
// query orchestration.
type DocumentService interface {
	// Ingest persists the raw bytes under a freshly generated id, runs the
	// partitioning collaborator, and stores the completed record. On any
	// failure nothing is stored; the persisted file may remain on disk.
	Ingest(ctx context.Context, r io.Reader, fileName string) (*model.Document, error)

	// Ask resolves the document, builds a bounded prompt from its full
	// content and the question, and relays the generative model's answer
	// verbatim. The store is consulted before any external call is made.
	Ask(ctx context.Context, documentID, query string) (*AskResult, error)

	// List returns (id, file name) pairs for every stored document.
	List(ctx context.Context) ([]DocumentInfo, error)

	// Get returns a single document by its id.
	Get(ctx context.Context, id string) (*model.Document, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store          storage.Storage
	repo           repository.DocumentStore
	partitioner    partition.Partitioner
	generator      genai.Generator
	maxPromptBytes int
}

// NewDocumentService constructs a DocumentService with all collaborators injected.
func NewDocumentService(
	store storage.Storage,
	repo repository.DocumentStore,
	partitioner partition.Partitioner,
	generator genai.Generator,
	maxPromptBytes int,
) DocumentService {
	return &documentService{
		store:          store,
		repo:           repo,
		partitioner:    partitioner,
		generator:      generator,
		maxPromptBytes: maxPromptBytes,
	}
}

func (s *documentService) Ingest(ctx context.Context, r io.Reader, fileName string) (*model.Document, error) {
	if r == nil {
		return nil, ErrReaderNil
	}

	// The generated id namespaces the stored file, so concurrent uploads
	// with the same name never collide.
	id := uuid.New().String()
	key := id + "_" + fileName

	info, err := s.store.Put(ctx, key, r)
	if err != nil {
		return nil, fmt.Errorf("persist upload: %w", err)
	}

	content, err := s.partitioner.Partition(ctx, info.Path)
	if err != nil {
		// The uploaded file stays on disk; cleanup is out of scope.
		return nil, fmt.Errorf("partition document: %w", err)
	}

	doc := &model.Document{
		ID:          id,
		FileName:    fileName,
		StoragePath: info.Path,
		Content:     content,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, doc); err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}
	return doc, nil
}

func (s *documentService) Ask(ctx context.Context, documentID, query string) (*AskResult, error) {
	if documentID == "" {
		return nil, ErrIDRequired
	}

	// Resolve before invoking the generative collaborator so an invalid
	// reference never costs an external call.
	doc, err := s.repo.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	prompt, err := buildPrompt(doc.Content, query, s.maxPromptBytes)
	if err != nil {
		return nil, err
	}

	answer, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	return &AskResult{
		Query:    query,
		Response: answer,
		Document: doc.FileName,
	}, nil
}

// List maps stored records to their public (id, file name) projection.
func (s *documentService) List(ctx context.Context) ([]DocumentInfo, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]DocumentInfo, 0, len(docs))
	for _, d := range docs {
		infos = append(infos, DocumentInfo{ID: d.ID, FileName: d.FileName})
	}
	return infos, nil
}

// Get returns a document by id.
func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}
