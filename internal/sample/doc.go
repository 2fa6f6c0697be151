// Package sample holds the demo shapes the fakegen command generates:
// Person (default and vip rule sets) and Account (default and premium, with
// owners built by a nested Person builder).
package sample
