package discord

import (
	"sort"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// presenceCache remembers each user's last seen activity names so that
// full presence snapshots can be turned into start and end transitions.
// It is volatile; open sessions themselves live in the store.
type presenceCache struct {
	mu         sync.Mutex
	activities map[int64]map[string]struct{}
}

func newPresenceCache() *presenceCache {
	return &presenceCache{
		activities: make(map[int64]map[string]struct{}),
	}
}

// diff records the user's current activity names and returns which names
// appeared and which disappeared since the previous snapshot.
func (c *presenceCache) diff(userID int64, current []string) (started, ended []string) {
	next := make(map[string]struct{}, len(current))
	for _, name := range current {
		if name != "" {
			next[name] = struct{}{}
		}
	}

	c.mu.Lock()
	prev := c.activities[userID]
	if len(next) == 0 {
		delete(c.activities, userID)
	} else {
		c.activities[userID] = next
	}
	c.mu.Unlock()

	for name := range next {
		if _, ok := prev[name]; !ok {
			started = append(started, name)
		}
	}
	for name := range prev {
		if _, ok := next[name]; !ok {
			ended = append(ended, name)
		}
	}

	sort.Strings(started)
	sort.Strings(ended)
	return started, ended
}

func activityNames(activities []*discordgo.Activity) []string {
	names := make([]string, 0, len(activities))
	for _, a := range activities {
		if a != nil && a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return names
}

// revert undoes one transition recorded by diff so the next snapshot
// produces it again.
func (c *presenceCache) revert(userID int64, name string, wasActive bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	set := c.activities[userID]
	if wasActive {
		if set == nil {
			set = make(map[string]struct{})
			c.activities[userID] = set
		}
		set[name] = struct{}{}
		return
	}

	delete(set, name)
	if len(set) == 0 {
		delete(c.activities, userID)
	}
}
