package connection

import (
	"context"
	"errors"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"

	"github.com/journalai/api/config"
	"github.com/journalai/api/logger"
)

var (
	ErrCloudTasksInitialization = errors.New("cloud tasks initialization error")
)

type CloudTasksClient struct {
	ct *cloudtasks.Client
}

func NewCloudTasks(ctx context.Context, log *logger.Logging, config *config.Config) (*CloudTasksClient, error) {
	logger := log.Logger(ctx)

	ct, err := cloudtasks.NewClient(ctx, config.ClientOptions()...)
	if err != nil {
		logger.Errorf("%s: %s", ErrCloudTasksInitialization, err)
		return nil, ErrCloudTasksInitialization
	}

	return &CloudTasksClient{
		ct,
	}, nil
}
