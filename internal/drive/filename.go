package drive

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var spaceRe = regexp.MustCompile(`\s+`)

// UniqueFileName derives a collision-resistant storage name from a slot
// prefix and the declared file name. Two submissions with the same
// human-entered team name never produce the same name: the unix-millis
// timestamp plus a uuid token keep them apart.
func UniqueFileName(prefix, originalName string) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	name := spaceRe.ReplaceAllString(strings.TrimSpace(originalName), "-")

	if prefix != "" {
		prefix = spaceRe.ReplaceAllString(strings.TrimSpace(prefix), "-")
		return fmt.Sprintf("%s-%d-%s-%s", prefix, time.Now().UnixMilli(), token, name)
	}
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), token, name)
}
