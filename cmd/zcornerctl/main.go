// zcornerctl is the admin CLI for the storefront: it logs in, inspects
// the resolved theme and edits section styles, tokens, the hero image,
// products and the gallery through the same client stack the site uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Elshan-Aliyev/zcorner-front/internal/client"
	"github.com/Elshan-Aliyev/zcorner-front/internal/core"
	"github.com/Elshan-Aliyev/zcorner-front/internal/theme"

	"github.com/dustin/go-humanize"
)

const recordTimeLayout = "2006-01-02 15:04:05.000Z"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "login":
		err = cmdLogin(os.Args[2:])
	case "logout":
		err = cmdLogout(os.Args[2:])
	case "settings":
		err = cmdSettings(os.Args[2:])
	case "tokens":
		err = cmdTokens(os.Args[2:])
	case "style":
		err = cmdStyle(os.Args[2:])
	case "hero":
		err = cmdHero(os.Args[2:])
	case "products":
		err = cmdProducts(os.Args[2:])
	case "gallery":
		err = cmdGallery(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: zcornerctl <command> [flags]

Commands:
  login     -email E -password P      authenticate and store the session
  logout                              drop the stored session
  settings                            print the resolved theme
  tokens    -primary C [-secondary C] [-font F] [-radius R] [-padding P]
  style     -section S -set field=value [-set ...]   edit one section override
  hero      -image URL                set the hero image (URL or data URL)
  products  [-page P] [-limit N] | -add -title T -page P [-price N] | -delete ID
  gallery   [-add -image URL [-title T] [-caption C]]

Global flags (per command): -config PATH`)
}

// setup loads config + session and returns a wired client.
func setup(fs *flag.FlagSet, args []string) (*Config, *client.Session, *client.Client, error) {
	configPath := fs.String("config", "", "Config file path")
	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	session := client.LoadSession(cfg.SessionFile)
	c := client.New(cfg.APIURL)
	c.SetTokenSource(func() string { return session.Token })
	return cfg, session, c, nil
}

func cmdLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password")
	_, session, c, err := setup(fs, args)
	if err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	token, user, err := c.Login(context.Background(), *email, *password)
	if err != nil {
		return err
	}

	session.Token = token
	session.User = user
	if err := session.Save(); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", user.Email, user.Role)
	return nil
}

func cmdLogout(args []string) error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	_, session, _, err := setup(fs, args)
	if err != nil {
		return err
	}
	if err := session.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func cmdSettings(args []string) error {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	_, _, c, err := setup(fs, args)
	if err != nil {
		return err
	}

	store := theme.NewTokenStore(c)
	store.Load(context.Background())
	t := store.Tokens()

	fmt.Println("Theme tokens:")
	fmt.Printf("  primary:        %s\n", t.PrimaryColor)
	fmt.Printf("  secondary:      %s\n", t.SecondaryColor)
	fmt.Printf("  font:           %s\n", t.FontFamily)
	fmt.Printf("  button radius:  %s\n", t.ButtonBorderRadius)
	fmt.Printf("  button padding: %s\n", t.ButtonPadding)

	reg := theme.NewRegistry(c)
	if err := reg.Load(context.Background()); err != nil {
		return err
	}

	styles := reg.All()
	if len(styles) == 0 {
		fmt.Println("No section overrides")
		return nil
	}
	fmt.Println("Section overrides:")
	for section, o := range styles {
		fmt.Printf("  %s:\n", section)
		for field, value := range overrideFields(o) {
			if value != "" {
				fmt.Printf("    %-16s %s\n", field, value)
			}
		}
	}
	return nil
}

func cmdTokens(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ExitOnError)
	primary := fs.String("primary", "", "Primary color")
	secondary := fs.String("secondary", "", "Secondary color")
	font := fs.String("font", "", "Font family")
	radius := fs.String("radius", "", "Button border radius")
	padding := fs.String("padding", "", "Button padding")
	_, _, c, err := setup(fs, args)
	if err != nil {
		return err
	}

	store := theme.NewTokenStore(c)
	store.Load(context.Background())

	// Unset flags keep the current value.
	t := store.Tokens()
	t.PrimaryColor = theme.Fallback(*primary, t.PrimaryColor)
	t.SecondaryColor = theme.Fallback(*secondary, t.SecondaryColor)
	t.FontFamily = theme.Fallback(*font, t.FontFamily)
	t.ButtonBorderRadius = theme.Fallback(*radius, t.ButtonBorderRadius)
	t.ButtonPadding = theme.Fallback(*padding, t.ButtonPadding)

	if err := store.Save(context.Background(), t); err != nil {
		return err
	}
	fmt.Println("Tokens updated")
	return nil
}

type setFlags []string

func (s *setFlags) String() string     { return strings.Join(*s, ",") }
func (s *setFlags) Set(v string) error { *s = append(*s, v); return nil }

func cmdStyle(args []string) error {
	fs := flag.NewFlagSet("style", flag.ExitOnError)
	section := fs.String("section", "", "Section id (e.g. hero, wishlist-header)")
	var sets setFlags
	fs.Var(&sets, "set", "field=value (repeatable)")
	_, _, c, err := setup(fs, args)
	if err != nil {
		return err
	}
	if *section == "" || len(sets) == 0 {
		return fmt.Errorf("style requires -section and at least one -set field=value")
	}

	reg := theme.NewRegistry(c)
	if err := reg.Load(context.Background()); err != nil {
		return err
	}

	// Start from the current override so a single-field edit does not
	// wipe the section's other fields.
	override := reg.Get(*section)
	for _, kv := range sets {
		field, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid -set %q, want field=value", kv)
		}
		if err := applyOverrideField(&override, field, value); err != nil {
			return err
		}
	}

	if err := reg.Set(context.Background(), *section, override); err != nil {
		return err
	}
	fmt.Printf("Section %q updated\n", *section)
	return nil
}

func applyOverrideField(o *core.SectionStyle, field, value string) error {
	switch field {
	case "backgroundColor":
		o.BackgroundColor = value
	case "headerColor":
		o.HeaderColor = value
	case "headerSize":
		o.HeaderSize = value
	case "headerWeight":
		o.HeaderWeight = value
	case "textColor":
		o.TextColor = value
	case "textSize":
		o.TextSize = value
	case "textWeight":
		o.TextWeight = value
	default:
		return fmt.Errorf("unknown style field %q", field)
	}
	return nil
}

func overrideFields(o core.SectionStyle) map[string]string {
	return map[string]string{
		"backgroundColor": o.BackgroundColor,
		"headerColor":     o.HeaderColor,
		"headerSize":      o.HeaderSize,
		"headerWeight":    o.HeaderWeight,
		"textColor":       o.TextColor,
		"textSize":        o.TextSize,
		"textWeight":      o.TextWeight,
	}
}

func cmdHero(args []string) error {
	fs := flag.NewFlagSet("hero", flag.ExitOnError)
	image := fs.String("image", "", "Hero image URL or data URL (empty clears it)")
	_, _, c, err := setup(fs, args)
	if err != nil {
		return err
	}

	patch := &core.SettingsPatch{HeroImage: image}
	if err := c.UpdateSettings(context.Background(), patch); err != nil {
		return err
	}
	fmt.Println("Hero image updated")
	return nil
}

func cmdProducts(args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	page := fs.String("page", "", "wishlist or marketplace (empty = all)")
	limit := fs.Int("limit", 0, "Max results (0 = all)")
	add := fs.Bool("add", false, "Add a product instead of listing")
	del := fs.String("delete", "", "Delete the product with this id")
	title := fs.String("title", "", "Product title (with -add)")
	price := fs.Float64("price", 0, "Product price (with -add)")
	description := fs.String("description", "", "Product description (with -add)")
	_, _, c, err := setup(fs, args)
	if err != nil {
		return err
	}

	if *del != "" {
		if err := c.DeleteProduct(context.Background(), *del); err != nil {
			return err
		}
		fmt.Printf("Deleted product %s\n", *del)
		return nil
	}

	if *add {
		if *title == "" || *page == "" {
			return fmt.Errorf("products -add requires -title and -page")
		}
		created, err := c.CreateProduct(context.Background(), &core.Product{
			Title:       *title,
			Price:       *price,
			Description: *description,
			Page:        *page,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added product %s\n", created.Id)
		return nil
	}

	products, err := c.ListProducts(context.Background(), *page, *limit)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Println("No products")
		return nil
	}
	for _, p := range products {
		fmt.Printf("%-14s %-28s $%-9.2f %-12s %s\n",
			p.Id, p.Title, p.Price, p.Page, relativeTime(p.Created))
	}
	return nil
}

func cmdGallery(args []string) error {
	fs := flag.NewFlagSet("gallery", flag.ExitOnError)
	add := fs.Bool("add", false, "Add an item instead of listing")
	image := fs.String("image", "", "Image URL or data URL")
	title := fs.String("title", "", "Item title")
	caption := fs.String("caption", "", "Item caption")
	_, _, c, err := setup(fs, args)
	if err != nil {
		return err
	}

	if *add {
		if *image == "" {
			return fmt.Errorf("gallery -add requires -image")
		}
		item, err := c.AddGalleryItem(context.Background(), &core.GalleryItem{
			Title:   *title,
			Image:   *image,
			Caption: *caption,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added gallery item %s\n", item.Id)
		return nil
	}

	items, err := c.ListGallery(context.Background())
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("Gallery is empty")
		return nil
	}
	for _, item := range items {
		fmt.Printf("%-14s %-28s %s\n", item.Id, item.Title, relativeTime(item.Created))
	}
	return nil
}

func relativeTime(created string) string {
	ts, err := time.Parse(recordTimeLayout, created)
	if err != nil {
		return created
	}
	return humanize.Time(ts)
}
