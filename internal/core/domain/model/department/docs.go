// Package department models the handling departments parcels are routed to.
//
// Departments are created active, can be deactivated and re-activated, and are
// never hard-deleted while rules or parcels reference them. The name is the
// business key used by rules to address a department.
package department
