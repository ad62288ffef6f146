package common

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

var (
	// CtxKeys are the gin context keys populated by the middlewares.
	CtxKeys struct {
		UserID string
		Email  string
	}

	ProjectID string

	GAEService string

	GAEVersion string

	// Production flag indicating if app is running the production backend on appengine
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool

	APIGateway string
)

const (
	appEngineURLFormat = "https://%s-dot-%s.uc.r.appspot.com"

	location = "us-central1"

	// TestProjectID is used when no project is configured outside release mode.
	TestProjectID = "journal-api-dev"
)

func init() {
	CtxKeys.UserID = "userId"
	CtxKeys.Email = "email"

	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")

	if ProjectID == "" {
		if gin.Mode() == gin.ReleaseMode {
			log.Fatalln("environment variable GOOGLE_CLOUD_PROJECT is not set")
		}

		ProjectID = TestProjectID
	}

	IsLocalhost = gin.Mode() != gin.ReleaseMode
	GAEService = GetEnv("GAE_SERVICE", "journal-api")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	Production = !IsLocalhost

	APIGateway = CreateAppEngineAudience()
}

// GetEnv returns the value of the environment variable, or the given
// fallback when the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
