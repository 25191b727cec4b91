package schedule

import (
	"time"
	"upkeep/internal/models"
)

// TaskTemplate is one starter maintenance task definition in a static,
// category-keyed table.
type TaskTemplate struct {
	Name         string
	Description  string
	IntervalDays int
	Priority     models.TaskPriority
}

// TaskDraft is an expanded template ready to be persisted as a
// MaintenanceTask once the caller attaches item and user identity.
type TaskDraft struct {
	Name               string
	Description        string
	IntervalDays       int
	Priority           models.TaskPriority
	NextDue            time.Time
	ReminderDaysBefore int
}

var vehicleTemplates = []TaskTemplate{
	{Name: "Oil Change", IntervalDays: 90, Priority: models.TaskPriorityHigh, Description: "Change engine oil and filter"},
	{Name: "Tire Rotation", IntervalDays: 180, Priority: models.TaskPriorityMedium, Description: "Rotate tires for even wear"},
	{Name: "Air Filter Replacement", IntervalDays: 365, Priority: models.TaskPriorityLow, Description: "Replace engine air filter"},
	{Name: "Brake Inspection", IntervalDays: 365, Priority: models.TaskPriorityHigh, Description: "Check brake pads and rotors"},
	{Name: "Transmission Fluid", IntervalDays: 730, Priority: models.TaskPriorityMedium, Description: "Check/replace transmission fluid"},
	{Name: "Coolant Flush", IntervalDays: 730, Priority: models.TaskPriorityMedium, Description: "Flush and replace coolant"},
	{Name: "Battery Check", IntervalDays: 365, Priority: models.TaskPriorityMedium, Description: "Test battery health"},
	{Name: "Wiper Blade Replacement", IntervalDays: 180, Priority: models.TaskPriorityLow, Description: "Replace windshield wipers"},
	{Name: "Spark Plugs", IntervalDays: 730, Priority: models.TaskPriorityMedium, Description: "Replace spark plugs"},
	{Name: "Cabin Air Filter", IntervalDays: 365, Priority: models.TaskPriorityLow, Description: "Replace cabin air filter"},
	{Name: "Brake Fluid", IntervalDays: 730, Priority: models.TaskPriorityMedium, Description: "Flush and replace brake fluid"},
	{Name: "Power Steering Fluid", IntervalDays: 730, Priority: models.TaskPriorityLow, Description: "Check and replace power steering fluid"},
	{Name: "Tire Pressure Check", IntervalDays: 30, Priority: models.TaskPriorityHigh, Description: "Check tire pressure and inflate"},
	{Name: "Car Wash", IntervalDays: 14, Priority: models.TaskPriorityLow, Description: "Wash and wax exterior"},
	{Name: "Interior Detail", IntervalDays: 90, Priority: models.TaskPriorityLow, Description: "Deep clean interior"},
}

var homeTemplates = []TaskTemplate{
	{Name: "HVAC Filter Change", IntervalDays: 90, Priority: models.TaskPriorityHigh, Description: "Replace HVAC air filter"},
	{Name: "Smoke Detector Batteries", IntervalDays: 180, Priority: models.TaskPriorityCritical, Description: "Replace smoke detector batteries"},
	{Name: "CO2 Detector Batteries", IntervalDays: 180, Priority: models.TaskPriorityCritical, Description: "Replace carbon monoxide detector batteries"},
	{Name: "Gutter Cleaning", IntervalDays: 180, Priority: models.TaskPriorityMedium, Description: "Clean gutters and downspouts"},
	{Name: "Water Heater Flush", IntervalDays: 365, Priority: models.TaskPriorityMedium, Description: "Drain and flush water heater"},
	{Name: "Dryer Vent Cleaning", IntervalDays: 365, Priority: models.TaskPriorityHigh, Description: "Clean dryer vent to prevent fire"},
	{Name: "Pest Control", IntervalDays: 90, Priority: models.TaskPriorityMedium, Description: "Pest prevention treatment"},
	{Name: "Roof Inspection", IntervalDays: 365, Priority: models.TaskPriorityMedium, Description: "Inspect roof for damage"},
	{Name: "Septic Pump", IntervalDays: 1095, Priority: models.TaskPriorityHigh, Description: "Pump septic tank"},
	{Name: "Furnace Inspection", IntervalDays: 365, Priority: models.TaskPriorityHigh, Description: "Professional furnace inspection"},
	{Name: "Chimney Sweep", IntervalDays: 365, Priority: models.TaskPriorityHigh, Description: "Clean chimney and inspect"},
	{Name: "Exterior Paint", IntervalDays: 1825, Priority: models.TaskPriorityMedium, Description: "Repaint exterior walls"},
	{Name: "Deck/Stain", IntervalDays: 1095, Priority: models.TaskPriorityMedium, Description: "Reseal and stain deck"},
	{Name: "Window Seals", IntervalDays: 365, Priority: models.TaskPriorityLow, Description: "Check and replace window seals"},
	{Name: "Fire Extinguisher Check", IntervalDays: 30, Priority: models.TaskPriorityHigh, Description: "Check fire extinguisher pressure"},
	{Name: "Whole House Fan", IntervalDays: 180, Priority: models.TaskPriorityLow, Description: "Clean and lubricate whole house fan"},
}

var applianceTemplates = []TaskTemplate{
	{Name: "Refrigerator Coil Cleaning", IntervalDays: 180, Priority: models.TaskPriorityMedium, Description: "Clean condenser coils"},
	{Name: "Dishwasher Filter Clean", IntervalDays: 30, Priority: models.TaskPriorityLow, Description: "Clean dishwasher filter"},
	{Name: "Washing Machine Clean", IntervalDays: 30, Priority: models.TaskPriorityLow, Description: "Run cleaning cycle"},
	{Name: "Oven Deep Clean", IntervalDays: 90, Priority: models.TaskPriorityLow, Description: "Deep clean oven interior"},
	{Name: "Range Hood Filter Clean", IntervalDays: 90, Priority: models.TaskPriorityLow, Description: "Clean or replace range hood filter"},
	{Name: "Microwave Clean", IntervalDays: 30, Priority: models.TaskPriorityLow, Description: "Clean microwave interior"},
	{Name: "Water Filter Replacement", IntervalDays: 180, Priority: models.TaskPriorityMedium, Description: "Replace water filter"},
	{Name: "AC Unit Filter", IntervalDays: 30, Priority: models.TaskPriorityHigh, Description: "Replace AC unit filter"},
	{Name: "Garage Door Service", IntervalDays: 365, Priority: models.TaskPriorityMedium, Description: "Lubricate and test garage door"},
	{Name: "Pool Pump Filter", IntervalDays: 30, Priority: models.TaskPriorityMedium, Description: "Clean or replace pool filter"},
	{Name: "Hot Tub/Spa Maintenance", IntervalDays: 30, Priority: models.TaskPriorityHigh, Description: "Test water chemistry and clean"},
	{Name: "Vacuum Refrigerator Coils", IntervalDays: 180, Priority: models.TaskPriorityLow, Description: "Vacuum behind refrigerator"},
	{Name: "Dishwasher Deep Clean", IntervalDays: 90, Priority: models.TaskPriorityLow, Description: "Run dishwasher cleaner"},
	{Name: "Washing Machine Drain Filter", IntervalDays: 90, Priority: models.TaskPriorityMedium, Description: "Clean washing machine drain filter"},
	{Name: "Coffee Maker Descale", IntervalDays: 90, Priority: models.TaskPriorityLow, Description: "Descale coffee maker"},
}

// TemplatesFor returns the starter template table for a category. Unknown
// categories yield an empty list, not an error.
func TemplatesFor(category models.ItemCategory) []TaskTemplate {
	switch category {
	case models.ItemCategoryVehicle:
		return vehicleTemplates
	case models.ItemCategoryHome:
		return homeTemplates
	case models.ItemCategoryAppliance:
		return applianceTemplates
	}
	return nil
}

// ExpandTemplates expands a category's template table into task drafts, one
// per entry in table order. Each draft is due intervalDays from now and
// carries the caller-supplied reminder lead time; name, description,
// interval, and priority come from the template verbatim. Deterministic for
// a fixed now.
func ExpandTemplates(category models.ItemCategory, reminderDaysBefore int, now time.Time) []TaskDraft {
	templates := TemplatesFor(category)
	if len(templates) == 0 {
		return nil
	}

	drafts := make([]TaskDraft, 0, len(templates))
	for _, template := range templates {
		drafts = append(drafts, TaskDraft{
			Name:               template.Name,
			Description:        template.Description,
			IntervalDays:       template.IntervalDays,
			Priority:           template.Priority,
			NextDue:            now.AddDate(0, 0, template.IntervalDays),
			ReminderDaysBefore: reminderDaysBefore,
		})
	}

	return drafts
}
