package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/smarttraffic/internal/client/models"
)

func (a *App) Speed(ctx context.Context) error {
	fmt.Fprintln(a.out, "Detecting speed...")
	r, err := a.speedService.Detect(ctx)
	if err != nil {
		return err
	}
	a.log.Debug(ctx, "speed detected", "reading", r.ID, "kmh", r.SpeedKmh)
	fmt.Fprintf(a.out, "Detected speed: %d km/h\n", r.SpeedKmh)
	return nil
}

func (a *App) Route(ctx context.Context) error {
	origin, err := getSimpleText(a.reader, "Starting point", a.out)
	if err != nil {
		return err
	}
	destination, err := getSimpleText(a.reader, "Destination", a.out)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Searching route...")
	r, err := a.routeService.FindRoute(ctx, origin, destination)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Route from %s to %s:\n", r.Origin, r.Destination)
	for i, p := range r.Points {
		fmt.Fprintf(a.out, "  %d. %.5f, %.5f\n", i+1, p.Latitude, p.Longitude)
	}
	fmt.Fprintf(a.out, "Map region: %.5f, %.5f (±%.4f, ±%.4f)\n",
		r.Region.Latitude, r.Region.Longitude, r.Region.LatitudeDelta, r.Region.LongitudeDelta)
	return nil
}

func (a *App) Settings(ctx context.Context) error {
	st, err := a.settingsService.Get(ctx)
	if err != nil {
		return err
	}
	printSettings(a, st)
	return nil
}

func (a *App) Toggle(ctx context.Context, name string) error {
	st, err := a.settingsService.Toggle(ctx, name)
	if err != nil {
		return err
	}
	printSettings(a, st)
	return nil
}

func (a *App) Users(ctx context.Context) error {
	users, err := a.users.Users(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registered accounts: %d\n", len(users))
	return nil
}

func printSettings(a *App, st models.Settings) {
	fmt.Fprintf(a.out, "%-18s %s\n", models.SettingDarkMode, onOff(st.DarkMode))
	fmt.Fprintf(a.out, "%-18s %s\n", models.SettingNotifications, onOff(st.Notifications))
	fmt.Fprintf(a.out, "%-18s %s\n", models.SettingLocationServices, onOff(st.LocationServices))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
