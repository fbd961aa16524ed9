// Copyright 2019 Yilmaz Gunalp
//
// This file is part of rusty-cron which makes it simple to manage your crontab.
//
// rusty-cron is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rusty-cron is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with rusty-cron.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"os"

	"github.com/yilmazgunalp/rusty-cron/rcron"
)

func main() {
	os.Exit(rcron.Main())
}
