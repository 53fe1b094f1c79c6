// ABOUTME: People CLI commands
// ABOUTME: Human-friendly commands for getting, listing, and editing people
package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/harperreed/breeze/models"
	"github.com/harperreed/breeze/people"
)

// fieldKeysFlag parses a comma-separated list of custom field names.
func fieldKeysFlag(raw string) []models.FieldKey {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var keys []models.FieldKey
	for _, name := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			keys = append(keys, models.Key(trimmed))
		}
	}
	return keys
}

// fieldArgs collects repeated --field key=value flags.
type fieldArgs []string

func (f *fieldArgs) String() string { return strings.Join(*f, ",") }

func (f *fieldArgs) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func (f fieldArgs) toUpdates() (map[string]*models.FieldValue, error) {
	if len(f) == 0 {
		return nil, nil
	}
	fields := make(map[string]*models.FieldValue, len(f))
	for _, arg := range f {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid --field %q, expected name=value", arg)
		}
		if value == "" {
			fields[strings.TrimSpace(key)] = nil // clear
			continue
		}
		fields[strings.TrimSpace(key)] = models.Value(value)
	}
	return fields, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// GetPersonCommand fetches and prints one formatted profile.
func GetPersonCommand(svc *people.Service, args []string) error {
	fs := flag.NewFlagSet("get-person", flag.ExitOnError)
	fields := fs.String("fields", "", "Comma-separated custom field names to include")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: get-person [flags] <person-id>")
	}

	person, err := svc.Get(context.Background(), fs.Arg(0), people.GetOptions{
		Fields: fieldKeysFlag(*fields),
	})
	if err != nil {
		return fmt.Errorf("failed to get person: %w", err)
	}
	return printJSON(person)
}

// ListPeopleCommand lists formatted profiles, as a table or JSON.
func ListPeopleCommand(svc *people.Service, args []string) error {
	fs := flag.NewFlagSet("list-people", flag.ExitOnError)
	fields := fs.String("fields", "", "Comma-separated custom field names to include")
	filter := fs.String("filter", "", "JSON filter object (filter_json)")
	limit := fs.Int("limit", 0, "Maximum number of people to return (0 = all)")
	offset := fs.Int("offset", 0, "Number of people to skip")
	asJSON := fs.Bool("json", false, "Print full profiles as JSON")
	_ = fs.Parse(args)

	opts := people.ListOptions{
		Fields: fieldKeysFlag(*fields),
		Limit:  *limit,
		Offset: *offset,
	}
	if *filter != "" {
		if err := json.Unmarshal([]byte(*filter), &opts.FilterJSON); err != nil {
			return fmt.Errorf("invalid --filter: %w", err)
		}
	}

	profiles, err := svc.List(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("failed to list people: %w", err)
	}

	if *asJSON {
		return printJSON(profiles)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE")
	for _, p := range profiles {
		email := ""
		if p.Email != nil {
			email = p.Email.Address
		}
		phone := ""
		if len(p.Phones) > 0 {
			phone = p.Phones[0].Number
		}
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n", p.ID, p.Name.First, p.Name.Last, email, phone)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d people\n", len(profiles))
	return nil
}

// personFlags registers the shared update flags on a flag set and returns a
// builder that turns the flags the caller actually set into UpdateParams.
func personFlags(fs *flag.FlagSet) func() (*models.UpdateParams, error) {
	first := fs.String("first", "", "First name")
	last := fs.String("last", "", "Last name")
	nick := fs.String("nick", "", "Nickname")
	middle := fs.String("middle", "", "Middle name")
	maiden := fs.String("maiden", "", "Maiden name")
	birthday := fs.String("birthday", "", "Birthday (YYYY-MM-DD or MM/DD/YYYY)")
	email := fs.String("email", "", "Primary email address")
	mobile := fs.String("mobile", "", "Mobile phone")
	home := fs.String("home", "", "Home phone")
	work := fs.String("work", "", "Work phone")
	street1 := fs.String("street1", "", "Street address line 1")
	street2 := fs.String("street2", "", "Street address line 2")
	city := fs.String("city", "", "City")
	state := fs.String("state", "", "State")
	zip := fs.String("zip", "", "Zip code")
	gender := fs.String("gender", "", "Gender")
	status := fs.String("status", "", "Status")
	campus := fs.String("campus", "", "Campus")
	maritalStatus := fs.String("marital-status", "", "Marital status")
	anniversary := fs.String("anniversary", "", "Anniversary date")
	joinDate := fs.String("join-date", "", "Join date")
	school := fs.String("school", "", "School")
	grade := fs.String("grade", "", "Grade")
	employer := fs.String("employer", "", "Employer")
	familyRole := fs.String("family-role", "", "Family role (Unassigned, Child, Adult, Head of Household, Spouse)")
	var fields fieldArgs
	fs.Var(&fields, "field", "Custom field update as name=value (repeatable; empty value clears)")

	return func() (*models.UpdateParams, error) {
		// Only flags the caller set become updates; untouched flags leave
		// the remote values alone.
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		pick := func(name string, v *string) *string {
			if set[name] {
				return v
			}
			return nil
		}

		params := &models.UpdateParams{
			Name: models.NameUpdate{
				First:  pick("first", first),
				Last:   pick("last", last),
				Nick:   pick("nick", nick),
				Middle: pick("middle", middle),
				Maiden: pick("maiden", maiden),
			},
			Birthday: pick("birthday", birthday),
			Email:    pick("email", email),
			Phones: models.PhoneUpdate{
				Mobile: pick("mobile", mobile),
				Home:   pick("home", home),
				Work:   pick("work", work),
			},
			Gender:        pick("gender", gender),
			Status:        pick("status", status),
			Campus:        pick("campus", campus),
			MaritalStatus: pick("marital-status", maritalStatus),
			Anniversary:   pick("anniversary", anniversary),
			JoinDate:      pick("join-date", joinDate),
			School:        pick("school", school),
			Grade:         pick("grade", grade),
			Employer:      pick("employer", employer),
			FamilyRole:    models.FamilyRole(*familyRole),
		}
		if set["street1"] || set["street2"] || set["city"] || set["state"] || set["zip"] {
			params.Address = &models.AddressUpdate{
				Street1: *street1,
				Street2: *street2,
				City:    *city,
				State:   *state,
				Zip:     *zip,
			}
		}
		custom, err := fields.toUpdates()
		if err != nil {
			return nil, err
		}
		params.Fields = custom
		return params, nil
	}
}

// AddPersonCommand creates a person and applies any supplied profile fields.
func AddPersonCommand(svc *people.Service, args []string) error {
	fs := flag.NewFlagSet("add-person", flag.ExitOnError)
	build := personFlags(fs)
	_ = fs.Parse(args)

	params, err := build()
	if err != nil {
		return err
	}
	if params.Name.First == nil || params.Name.Last == nil {
		return fmt.Errorf("--first and --last are required")
	}

	addParams := &models.AddParams{
		First:        *params.Name.First,
		Last:         *params.Name.Last,
		UpdateParams: *params,
	}
	id, err := svc.Add(context.Background(), addParams)
	if err != nil {
		return fmt.Errorf("failed to add person: %w", err)
	}

	fmt.Printf("✓ Person created: %s %s (ID: %s)\n", addParams.First, addParams.Last, id)
	return nil
}

// UpdatePersonCommand applies supplied profile fields to an existing person.
func UpdatePersonCommand(svc *people.Service, args []string) error {
	fs := flag.NewFlagSet("update-person", flag.ExitOnError)
	build := personFlags(fs)
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: update-person [flags] <person-id>")
	}
	params, err := build()
	if err != nil {
		return err
	}

	updates, err := svc.Update(context.Background(), fs.Arg(0), params)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}

	fmt.Printf("✓ Person updated: %s (%d field updates)\n", fs.Arg(0), len(updates))
	return nil
}

// DeletePersonCommand removes a person.
func DeletePersonCommand(svc *people.Service, args []string) error {
	fs := flag.NewFlagSet("delete-person", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: delete-person <person-id>")
	}

	if err := svc.Delete(context.Background(), fs.Arg(0)); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	fmt.Printf("✓ Person deleted: %s\n", fs.Arg(0))
	return nil
}

// ProfileFieldsCommand prints the resolved profile field schema.
func ProfileFieldsCommand(svc *people.Service, args []string) error {
	fs := flag.NewFlagSet("profile-fields", flag.ExitOnError)
	fields := fs.String("fields", "", "Comma-separated custom field names to resolve")
	asJSON := fs.Bool("json", false, "Print resolved fields as JSON")
	_ = fs.Parse(args)

	resolved, err := svc.ProfileFields(context.Background(), fieldKeysFlag(*fields))
	if err != nil {
		return fmt.Errorf("failed to fetch profile fields: %w", err)
	}

	if *asJSON {
		return printJSON(resolved)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tFIELD ID\tTYPE\tNAME\tOPTIONS")
	for _, field := range resolved {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			field.Key, field.FieldID, field.FieldType, field.Name, len(field.Options))
	}
	return w.Flush()
}
