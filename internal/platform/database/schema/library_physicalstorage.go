package schema

// PhysicalStorageTable represents the 'library.physical_storage' table
type PhysicalStorageTable struct {
	Table                    string
	ID                       string
	Type                     string
	HumanReadableName        string
	HumanReadableDescription string
	HumanReadableLocation    string
	MachineReadableName      string
	MachineReadableLocation  string
}

// PhysicalStorage is the schema definition for library.physical_storage
var PhysicalStorage = PhysicalStorageTable{
	Table:                    "library.physical_storage",
	ID:                       "id",
	Type:                     "type",
	HumanReadableName:        "human_readable_name",
	HumanReadableDescription: "human_readable_description",
	HumanReadableLocation:    "human_readable_location",
	MachineReadableName:      "machine_readable_name",
	MachineReadableLocation:  "machine_readable_location",
}

func (t PhysicalStorageTable) Columns() []string {
	return []string{
		t.ID, t.Type, t.HumanReadableName, t.HumanReadableDescription,
		t.HumanReadableLocation, t.MachineReadableName, t.MachineReadableLocation,
	}
}
