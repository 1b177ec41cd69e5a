package trend

import "fmt"

func ExampleInterval() {
	periods, err := Interval("201408", "201502")
	if err != nil {
		panic(err)
	}
	fmt.Println(periods)
	// Output:
	// [201408 201409 201410 201411 201412 201501 201502]
}

func ExampleDensify() {
	series, err := Densify(PeriodCounts{"201404": 32, "201408": 6})
	if err != nil {
		panic(err)
	}
	for _, e := range series {
		fmt.Printf("%s-%d\n", e.Period, e.Value)
	}
	// Output:
	// 201404-32
	// 201405-0
	// 201406-0
	// 201407-0
	// 201408-6
}
