// Package harness runs derivation scenarios against a phonology
// configuration and snapshots their output as golden files.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: spirantization
//	description: "kʰ becomes x before vowels"
//	config: ../configs/sol.cue
//	changes:                      # optional, replaces the configured rules
//	  - "kʰ -> x / _ {V}"
//	lexicon:                      # optional, required by lookup
//	  - sol: lum
//	    extra: V
//	    meanings: [{eng: walk}]
//	derive:
//	  - input: kan
//	    expect:
//	      phonemic: kʰan˧
//	      phonetic: xan˧
//	      steps: [kʰan˧, xan˧]
//	sentences:
//	  - input: "kan, djàng"
//	    expect: { phonetic: "/xan˧ | can˥˧/" }
//	lookup:
//	  - query: lumta
//	    expect: { terminals: [], affixes: ["lum + -ta"] }
//	assertions:
//	  - type: derivation_count
//	    word: kan
//	    count: 2
//
// Supported assertion types:
//   - derivation_contains: A form appears among a word's steps
//   - derivation_order: Forms appear among a word's steps in order
//   - derivation_count: A word's derivation has exactly N steps
//   - lookup_count: A lookup mentions exactly N entries
//
// # Deterministic Testing
//
// Lexicons are imported into an in-memory SQLite store whose generated
// hashes come from testutil.SequentialHashes, so snapshots are identical
// across runs. Snapshots are canonical JSON and omit the config hash.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/spirantization.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, msg := range result.Errors {
//	    log.Println(msg)
//	}
package harness
