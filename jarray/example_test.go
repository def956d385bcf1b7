package jarray_test

import (
	"fmt"

	"github.com/marcodamonte/jarray/jarray"
)

func Example() {
	var names jarray.Array[string]
	names.PushBack("Kamiya Nao")
	names.PushBack("Tachibana Arisu")
	names.PushBack("Minase Iori")
	names.PushBack("Futaba An")
	names.PushBack("Hisakawa Hayate")
	names.PushBack("Igarashi Kyouko")
	names.PushBack("Futami Mami")

	fmt.Printf("%d, %d\n", names.Len(), names.Cap())

	jarray.Sort(names.Begin(), names.End())
	for s := range names.Values() {
		fmt.Println(s)
	}
	// Output:
	// 7, 8
	// Futaba An
	// Futami Mami
	// Hisakawa Hayate
	// Igarashi Kyouko
	// Kamiya Nao
	// Minase Iori
	// Tachibana Arisu
}

func ExampleIterator() {
	var a jarray.Array[int]
	for _, v := range []int{3, 1, 2} {
		a.PushBack(v)
	}

	for it, end := a.Begin(), a.End(); it.Less(end); it.Inc() {
		fmt.Println(it.Pos(), it.Get())
	}
	fmt.Println(a.End().Distance(a.Begin()), *a.Begin().At(2))
	// Output:
	// 0 3
	// 1 1
	// 2 2
	// 3 2
}
