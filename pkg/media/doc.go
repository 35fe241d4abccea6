// Package media handles the images and videos displayed by form questions:
// upload checks, hosted URL parsing and cleanup of assets no page uses anymore.
package media
