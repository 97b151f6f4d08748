package testutil

// Seed bundles a human-readable name with seed bytes.
//
// Curated seeds are hand-crafted to exercise specific scenarios that random
// fuzzing might take a long time to discover. Each seed produces a
// deterministic sequence of operations when fed to OpGenerator with
// DefaultOpGenConfig.
//
// Use RunBehaviorWithSeed to execute these:
//
//	testutil.RunBehaviorWithSeed(t, testutil.SeedFilterAfterToggle(), cfg)
type Seed struct {
	Name string
	Data []byte
}

// CuratedSeeds returns all curated seeds with descriptive names.
func CuratedSeeds() []Seed {
	return []Seed{
		{Name: "filter_after_toggle", Data: SeedFilterAfterToggle()},
		{Name: "edit_single_task", Data: SeedEditSingleTask()},
		{Name: "delete_while_editing", Data: SeedDeleteWhileEditing()},
		{Name: "blank_drafts", Data: SeedBlankDrafts()},
		{Name: "invalid_rows", Data: SeedInvalidRows()},
		{Name: "edit_under_filter", Data: SeedEditUnderFilter()},
	}
}

func defaultSeedConfig() *OpGenConfig {
	cfg := DefaultOpGenConfig()

	return &cfg
}

// SeedFilterAfterToggle adds two tasks, completes the first and switches
// between the Done and NotDone views.
func SeedFilterAfterToggle() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		AddTask("Buy milk").
		AddTask("Walk dog").
		Toggle(0).
		SetFilter("done").
		SetFilter("notdone").
		SetFilter("all").
		Bytes()
}

// SeedEditSingleTask renames the only task through the edit flow.
func SeedEditSingleTask() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		AddTask("Call mom").
		BeginEdit(0).
		SetDraft("Fix bike").
		CommitEdit().
		Bytes()
}

// SeedDeleteWhileEditing deletes the task being edited, then presses Enter,
// which must add rather than commit.
func SeedDeleteWhileEditing() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		AddTask("Read book").
		AddTask("Write tests").
		BeginEdit(0).
		Delete(0).
		Submit().
		Bytes()
}

// SeedBlankDrafts submits whitespace-only drafts in both flows.
func SeedBlankDrafts() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		SetDraft(" ").
		Add().
		SetDraft("\t").
		Submit().
		AddTask("  padded  ").
		BeginEdit(0).
		SetDraft("").
		Submit().
		Bytes()
}

// SeedInvalidRows points row commands past both ends of the list.
func SeedInvalidRows() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		ToggleInvalid(-1).
		AddTask("Buy milk").
		ToggleInvalid(1).
		ToggleInvalid(8).
		ToggleInvalid(-1).
		Bytes()
}

// SeedEditUnderFilter edits a task while a filter hides others, then
// deletes an earlier task so positions shift.
func SeedEditUnderFilter() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		AddTask("Buy milk").
		SubmitTask("Walk dog").
		AddTask("Call mom").
		Toggle(1).
		SetFilter("notdone").
		BeginEdit(2).
		SetDraft("Read book").
		Submit().
		Toggle(0).
		SetFilter("someday").
		Delete(0).
		Bytes()
}
