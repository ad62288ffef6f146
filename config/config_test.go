package config

import (
	"testing"

	"github.com/zeebo/assert"
)

const validServiceAccountJSON = `{\"type\":\"service_account\",\"project_id\":\"my-project\",\"client_email\":\"journal@my-project.iam.gserviceaccount.com\"}`

func TestConfig_Parse(t *testing.T) {
	tests := []struct {
		name                string
		data                string
		wantErr             bool
		expectedErr         error
		expectedLocation    string
		expectedVertexModel string
	}{
		{
			name: "success - full gcp table",
			data: `[gcp]
project_id = "my-project"
location = "europe-west1"
vertex_model = "gemini-1.5-pro"
service_account_json = "` + validServiceAccountJSON + `"
`,
			expectedLocation:    "europe-west1",
			expectedVertexModel: "gemini-1.5-pro",
		},
		{
			name: "success - defaults applied",
			data: `[gcp]
project_id = "my-project"
service_account_json = "` + validServiceAccountJSON + `"
`,
			expectedLocation:    "us-central1",
			expectedVertexModel: "gemini-1.5-flash",
		},
		{
			name: "error - missing project id",
			data: `[gcp]
service_account_json = "` + validServiceAccountJSON + `"
`,
			wantErr: true,
		},
		{
			name: "error - service account json is not json",
			data: `[gcp]
project_id = "my-project"
service_account_json = "not a key"
`,
			wantErr:     true,
			expectedErr: ErrInvalidServiceAccountJSON,
		},
		{
			name: "error - service account json without client email",
			data: `[gcp]
project_id = "my-project"
service_account_json = "{\"type\":\"service_account\"}"
`,
			wantErr:     true,
			expectedErr: ErrInvalidServiceAccountJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := Parse([]byte(tt.data))

			if tt.wantErr {
				assert.NotNil(t, err)

				if tt.expectedErr != nil {
					assert.Equal(t, tt.expectedErr, err)
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "my-project", config.GCP.ProjectID)
			assert.Equal(t, tt.expectedLocation, config.GCP.Location)
			assert.Equal(t, tt.expectedVertexModel, config.GCP.VertexModel)
		})
	}
}

func TestConfig_ClientOptions(t *testing.T) {
	config, err := Parse([]byte(`[gcp]
project_id = "my-project"
service_account_json = "` + validServiceAccountJSON + `"
`))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(config.ClientOptions()))
}
