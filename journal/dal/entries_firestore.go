package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/journalai/api/framework/connection"
	journal "github.com/journalai/api/journal/domain"
)

type EntriesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

const (
	usersCollection     = "users"
	entriesCollection   = "entries"
	summariesCollection = "summaries"

	timeCreatedField = "timeCreated"
	isSharedField    = "isShared"
)

func NewEntriesFirestore(ctx context.Context, projectID string) (*EntriesFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewEntriesFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewEntriesFirestoreWithClient(fun connection.FirestoreFromContextFun) *EntriesFirestore {
	return &EntriesFirestore{
		firestoreClientFun: fun,
	}
}

func (d *EntriesFirestore) entriesRef(ctx context.Context, userID string) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).
		Collection(usersCollection).
		Doc(userID).
		Collection(entriesCollection)
}

func (d *EntriesFirestore) GetRef(ctx context.Context, userID, entryID string) *firestore.DocumentRef {
	return d.entriesRef(ctx, userID).Doc(entryID)
}

func (d *EntriesFirestore) Get(ctx context.Context, userID, entryID string) (*journal.Entry, error) {
	if userID == "" {
		return nil, journal.ErrInvalidUserID
	}

	if entryID == "" {
		return nil, journal.ErrInvalidEntryID
	}

	docRef := d.GetRef(ctx, userID, entryID)

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, journal.ErrEntryNotFound(entryID)
		}

		return nil, err
	}

	var entry journal.Entry

	if err := docSnap.DataTo(&entry); err != nil {
		return nil, err
	}

	entry.ID = docSnap.Ref.ID
	entry.Ref = docRef

	return &entry, nil
}

func (d *EntriesFirestore) Create(ctx context.Context, userID string, entry *journal.Entry) (*journal.Entry, error) {
	if userID == "" {
		return nil, journal.ErrInvalidUserID
	}

	if entry == nil {
		return nil, journal.ErrInvalidEntry
	}

	ref, _, err := d.entriesRef(ctx, userID).Add(ctx, entry)
	if err != nil {
		return nil, err
	}

	docSnap, err := ref.Get(ctx)
	if err != nil {
		return nil, err
	}

	var newEntry journal.Entry
	if err := docSnap.DataTo(&newEntry); err != nil {
		return nil, err
	}

	newEntry.ID = ref.ID
	newEntry.Ref = ref

	return &newEntry, nil
}

// List returns the user entries, newest first.
func (d *EntriesFirestore) List(ctx context.Context, userID string) ([]*journal.Entry, error) {
	if userID == "" {
		return nil, journal.ErrInvalidUserID
	}

	iter := d.entriesRef(ctx, userID).
		OrderBy(timeCreatedField, firestore.Desc).
		Documents(ctx)

	return entriesFromIterator(iter)
}

// ListShared returns the entries marked as shared, oldest first.
func (d *EntriesFirestore) ListShared(ctx context.Context, userID string) ([]*journal.Entry, error) {
	if userID == "" {
		return nil, journal.ErrInvalidUserID
	}

	iter := d.entriesRef(ctx, userID).
		Where(isSharedField, "==", true).
		OrderBy(timeCreatedField, firestore.Asc).
		Documents(ctx)

	return entriesFromIterator(iter)
}

// ListLast returns up to lastN of the most recent entries.
func (d *EntriesFirestore) ListLast(ctx context.Context, userID string, lastN int) ([]*journal.Entry, error) {
	if userID == "" {
		return nil, journal.ErrInvalidUserID
	}

	iter := d.entriesRef(ctx, userID).
		OrderBy(timeCreatedField, firestore.Desc).
		Limit(lastN).
		Documents(ctx)

	return entriesFromIterator(iter)
}

func (d *EntriesFirestore) SetShared(ctx context.Context, userID, entryID string, isShared bool) error {
	if userID == "" {
		return journal.ErrInvalidUserID
	}

	if entryID == "" {
		return journal.ErrInvalidEntryID
	}

	docRef := d.GetRef(ctx, userID, entryID)

	if _, err := docRef.Update(ctx, []firestore.Update{
		{Path: isSharedField, Value: isShared},
	}); err != nil {
		if status.Code(err) == codes.NotFound {
			return journal.ErrEntryNotFound(entryID)
		}

		return err
	}

	return nil
}

// Delete removes the entry and its summaries.
func (d *EntriesFirestore) Delete(ctx context.Context, userID, entryID string) error {
	if userID == "" {
		return journal.ErrInvalidUserID
	}

	if entryID == "" {
		return journal.ErrInvalidEntryID
	}

	docRef := d.GetRef(ctx, userID, entryID)

	iter := docRef.Collection(summariesCollection).Documents(ctx)

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return err
		}

		if _, err := docSnap.Ref.Delete(ctx); err != nil {
			return err
		}
	}

	if _, err := docRef.Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return journal.ErrEntryNotFound(entryID)
		}

		return err
	}

	return nil
}

func (d *EntriesFirestore) AddSummary(ctx context.Context, userID, entryID string, summary *journal.Summary) error {
	if summary == nil {
		return journal.ErrInvalidSummary
	}

	if _, _, err := d.GetRef(ctx, userID, entryID).
		Collection(summariesCollection).
		Add(ctx, summary); err != nil {
		return err
	}

	return nil
}

// GetLatestSummary returns the most recent summary of an entry, or
// journal.ErrSummaryNotFound when the entry was never summarized.
func (d *EntriesFirestore) GetLatestSummary(ctx context.Context, userID, entryID string) (*journal.Summary, error) {
	iter := d.GetRef(ctx, userID, entryID).
		Collection(summariesCollection).
		OrderBy(timeCreatedField, firestore.Desc).
		Limit(1).
		Documents(ctx)

	docSnap, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, journal.ErrSummaryNotFound
		}

		return nil, err
	}

	var summary journal.Summary
	if err := docSnap.DataTo(&summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func entriesFromIterator(iter *firestore.DocumentIterator) ([]*journal.Entry, error) {
	entries := make([]*journal.Entry, 0)

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var entry journal.Entry
		if err := docSnap.DataTo(&entry); err != nil {
			return nil, err
		}

		entry.ID = docSnap.Ref.ID
		entry.Ref = docSnap.Ref

		entries = append(entries, &entry)
	}

	return entries, nil
}
