package battery

import (
	"github.com/brutella/can"
	"github.com/pkg/errors"
	ms "pfeifer.dev/dashd/settings"
	"pfeifer.dev/dashd/utils"
)

// OpenBus opens a socketcan interface and starts handing received frames to
// subscribers in the background. Disconnect the bus to stop.
func OpenBus(iface string) (*can.Bus, error) {
	bus, err := can.NewBusForInterfaceWithName(iface)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open can interface %s", iface)
	}
	go func() {
		err := bus.ConnectAndPublish()
		utils.Logwe(errors.Wrap(err, "can bus stopped"))
	}()
	return bus, nil
}

func NewClientWithSettings(bus Bus, s *ms.DashSettings) *Client {
	c := NewClient(bus)
	if s.BatteryAddr != 0 {
		c.Addr = s.BatteryAddr
	}
	if s.BatteryQueryTimeout > 0 {
		c.Timeout = s.BatteryTimeout()
	}
	if s.BatteryQueryRetries > 0 {
		c.Retries = s.BatteryQueryRetries
	}
	return c
}
