package version

// Version is the current release of ai-review.
const Version = "0.1.0"
