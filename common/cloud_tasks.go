package common

import (
	"context"
	"fmt"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	"cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type TaskQueue string

const (
	// Journal
	TaskQueueJournalSummaries TaskQueue = "journal-summaries"

	// Misc
	TaskQueueDefault TaskQueue = "default"
)

var (
	queueResourceNameFormat   = "projects/%s/locations/%s/queues/%s"
	serviceAccountEmailFormat = "gcp-jobs@%s.iam.gserviceaccount.com"
)

type CloudTaskConfig struct {
	Method           cloudtaskspb.HttpMethod
	Path             string
	Queue            TaskQueue
	Body             []byte
	ScheduleTime     *timestamppb.Timestamp
	DispatchDeadline *durationpb.Duration
	URL              string
	Audience         string
}

// TimeToTimestamp creates timestamp.Timestamp from go time.Time
func TimeToTimestamp(t time.Time) *timestamppb.Timestamp {
	seconds := t.Unix()

	return &timestamppb.Timestamp{
		Seconds: seconds,
		Nanos:   int32(t.UnixNano() - seconds),
	}
}

func GetQueueResourceName(queue TaskQueue) string {
	return fmt.Sprintf(queueResourceNameFormat, ProjectID, location, queue)
}

func CreateAppEngineAudienceWithValues(service, project string) string {
	return fmt.Sprintf(appEngineURLFormat, service, project)
}

func CreateAppEngineAudience() string {
	return CreateAppEngineAudienceWithValues(GAEService, ProjectID)
}

// CreateCloudTaskURLWithValues is the full app engine with project and service URL
func CreateCloudTaskURLWithValues(service, project, path string) string {
	return CreateAppEngineAudienceWithValues(service, project) + path
}

// CreateCloudTaskURL is the full app engine URL
func CreateCloudTaskURL(path string) string {
	return CreateCloudTaskURLWithValues(GAEService, ProjectID, path)
}

// CreateCloudTask constructs a task with an authorization token
// and HTTP target then adds it to a Queue.
func CreateCloudTask(ctx context.Context, ct *cloudtasks.Client, config *CloudTaskConfig) (*cloudtaskspb.Task, error) {
	email := fmt.Sprintf(serviceAccountEmailFormat, ProjectID)

	audience := GAEService
	if config.Audience != "" {
		audience = config.Audience
	}

	url := CreateCloudTaskURL(config.Path)
	if config.URL != "" {
		url = config.URL
	}

	createTaskRequest := &cloudtaskspb.CreateTaskRequest{
		Parent: GetQueueResourceName(config.Queue),
		Task: &cloudtaskspb.Task{
			MessageType: &cloudtaskspb.Task_HttpRequest{
				HttpRequest: &cloudtaskspb.HttpRequest{
					HttpMethod: config.Method,
					Url:        url,
					Headers: map[string]string{
						"Content-Type": "application/json",
					},
					AuthorizationHeader: &cloudtaskspb.HttpRequest_OidcToken{
						OidcToken: &cloudtaskspb.OidcToken{
							ServiceAccountEmail: email,
							Audience:            audience,
						},
					},
				},
			},
		},
	}

	if config.DispatchDeadline != nil {
		createTaskRequest.Task.DispatchDeadline = config.DispatchDeadline
	} else {
		// set the default dispatch deadline to 30 minutes (maximum duration)
		createTaskRequest.Task.DispatchDeadline = durationpb.New(time.Minute * 30)
	}

	if config.ScheduleTime != nil {
		createTaskRequest.Task.ScheduleTime = config.ScheduleTime
	}

	if config.Body != nil {
		createTaskRequest.Task.GetHttpRequest().Body = config.Body
	}

	createdTask, err := ct.CreateTask(ctx, createTaskRequest)
	if err != nil {
		return nil, fmt.Errorf("error creating cloud task: %s", err.Error())
	}

	return createdTask, nil
}
