package stream

import (
	"fmt"
	"time"

	"github.com/framecast-cli/framecast/key"
	"github.com/spf13/viper"
)

// subscribeDelay is how long after connecting the feed subscriptions are sent.
// The greeting keep-alive goes out first so the server registers the client.
const subscribeDelay = 500 * time.Millisecond

// Subscribe greets the server and, after a short settling delay, requests the
// periodic session and activity log feeds at the configured intervals.
func (c *Client) Subscribe() {
	c.Send(MsgKeepAlive, nil)

	time.AfterFunc(subscribeDelay, func() {
		c.Send(MsgSessionsStart, fmt.Sprintf("0, %d", viper.GetInt(key.StreamSessionsInterval)))
		c.Send(MsgActivityLogEntryStart, fmt.Sprintf("0, %d", viper.GetInt(key.StreamActivityInterval)))
	})
}
