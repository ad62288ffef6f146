package connection

import (
	"context"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"github.com/journalai/api/config"
	"github.com/journalai/api/logger"
)

const (
	// CtxFirestoreKey is how firestore connections are stored/retrieved.
	CtxFirestoreKey = "app-firestore"

	// CtxCloudTasksKey is how cloud tasks connections are stored/retrieved.
	CtxCloudTasksKey = "app-cloud-tasks"
)

type Connection struct {
	*FirestoreClient
	*CloudTasksClient
}

// NewConnection initializes the gcp clients necessary for api support,
// authorized with the configured service account.
func NewConnection(ctx context.Context, log *logger.Logging, config *config.Config) (*Connection, error) {
	fs, err := NewFirestore(ctx, log, config)
	if err != nil {
		return nil, err
	}

	ct, err := NewCloudTasks(ctx, log, config)
	if err != nil {
		return nil, err
	}

	return &Connection{
		fs,
		ct,
	}, nil
}

// Firestore returns a firestore connection that was stored in context.
// it returns by default a firestore connection, if there was not on context.
func (c *Connection) Firestore(ctx context.Context) *firestore.Client {
	if fs, ok := ctx.Value(CtxFirestoreKey).(*firestore.Client); ok {
		return fs
	}

	return c.fs
}

// CloudTasks returns a cloud tasks connection that was stored in context.
// it returns by default a cloud tasks connection, if there was not on context.
func (c *Connection) CloudTasks(ctx context.Context) *cloudtasks.Client {
	if ct, ok := ctx.Value(CtxCloudTasksKey).(*cloudtasks.Client); ok {
		return ct
	}

	return c.ct
}

// FirestoreWithContext stores under gin context, a firestore connection.
func (c *Connection) FirestoreWithContext(ctx *gin.Context) {
	ctx.Set(CtxFirestoreKey, c.fs)
}

type FirestoreFromContextFun = func(ctx context.Context) *firestore.Client
