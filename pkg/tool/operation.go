// Package tool exposes the financial calculations through a uniform
// (operation, params) contract suitable for LLM tool calling: a static
// specification for discovery, a dispatcher that validates and routes
// requests, and decoding helpers for agent-produced payloads.
package tool

// Operation identifies a calculation the dispatcher can route.
type Operation string

// The fixed operation set. The dispatcher switch and the published
// specification both derive from these constants, so extending the set
// extends both.
const (
	OpNPV           Operation = "npv"
	OpIRR           Operation = "irr"
	OpPayback       Operation = "payback"
	OpBreakEven     Operation = "break_even"
	OpROI           Operation = "roi"
	OpProjection    Operation = "projection"
	OpUnitEconomics Operation = "unit_economics"
	OpExecuteCode   Operation = "execute_code"
)

// Operations returns the supported operations in declaration order.
func Operations() []Operation {
	return []Operation{
		OpNPV,
		OpIRR,
		OpPayback,
		OpBreakEven,
		OpROI,
		OpProjection,
		OpUnitEconomics,
		OpExecuteCode,
	}
}
