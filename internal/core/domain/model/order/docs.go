// Package order contains the order aggregate and its lifecycle state machine.
// An order ties a user to captured line items, monetary totals, and fulfillment
// state. All mutations go through aggregate methods so that the status field
// and the paid/delivered flags can only change together, never independently.
package order
