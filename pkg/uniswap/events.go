package uniswap

// RefreshC returns a channel that receives a signal whenever a swap attempt
// completes and balances should be re-read. Delivery is best-effort: the
// signal is dropped for subscribers that are not draining their channel.
func (c *Controller) RefreshC() <-chan struct{} {
	ch := make(chan struct{}, 1)

	c.subMu.Lock()
	c.subs = append(c.subs, ch)
	c.subMu.Unlock()

	return ch
}

func (c *Controller) notifyRefresh() {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	for _, ch := range c.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
