// Package scaffold assembles solution files from question records.
//
// A [Generator] runs the full pipeline for one [question.Record]: it picks
// the language snippet, extracts the worked examples from the description,
// inspects the reference function, generates assertions and renders the
// result as a [File]:
//
//	import assert from "node:assert";
//	import { buildLinkedList, linkedListToArray } from "@/tools/leetcode-helpers";
//
//	/**
//	 * Reverse Linked List (#206)
//	 * https://leetcode.com/problems/reverse-linked-list/
//	 *
//	 * Given the head of a singly linked list, reverse the list, and return
//	 * the reversed list.
//	 */
//
//	function reverseList(head: ListNode | null): ListNode | null {
//
//	};
//
//	/**
//	 * Example 1
//	 * ...
//	 */
//	assert.deepStrictEqual(linkedListToArray(reverseList(buildLinkedList([1,2,3,4,5]))), [5,4,3,2,1]);
//
// The construction helpers referenced by generated files are shipped with the
// package and written by [WriteHelpers].
//
// # Configuration
//
// [Config] binds generator settings to CLI flags. Projects can also carry a
// [FileConfig] in a YAML file; [LoadFile] validates it against the JSON
// Schema returned by [Schema] before it is applied.
package scaffold
